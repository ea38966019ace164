package game

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var facePalette = map[Face]color.RGBA{
	Placeholder: colornames.Slategray,
	1:           colornames.Crimson,
	2:           colornames.Darkorange,
	3:           colornames.Gold,
	4:           colornames.Forestgreen,
	5:           colornames.Teal,
	6:           colornames.Royalblue,
	7:           colornames.Darkviolet,
	8:           colornames.Hotpink,
}

// GenerateAssets writes a plain placeholder and numbered face images of the
// given size into dir
func GenerateAssets(dir string, size int) error {
	if size <= 0 {
		return errors.Errorf("invalid asset size %d", size)
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrap(err, "creating assets directory")
	}

	for face := Placeholder; face <= NumFaces; face++ {
		label := "?"
		if face != Placeholder {
			label = strconv.Itoa(int(face))
		}

		path := AssetPath(dir, face)
		if err := writeBMP(path, renderTile(size, facePalette[face], label)); err != nil {
			return errors.Wrapf(err, "writing asset %s", path)
		}
	}
	return nil
}

func renderTile(size int, background color.RGBA, label string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)

	border := size / 20
	inner := image.Rect(border, border, size-border, size-border)
	draw.Draw(img, inner, image.NewUniform(background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.White),
		Face: face,
	}
	width := drawer.MeasureString(label)
	drawer.Dot = fixed.Point26_6{
		X: fixed.I(size/2) - width/2,
		Y: fixed.I(size/2 + face.Ascent/2),
	}
	drawer.DrawString(label)

	return img
}

func writeBMP(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

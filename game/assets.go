package game

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	_ "image/png"

	"github.com/faiface/pixel"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
)

// Sprites holds the face-down sprite and one sprite per face, all cut from a
// single sheet so they can be drawn through one batch
type Sprites struct {
	sheet       pixel.Picture
	placeholder *pixel.Sprite
	faces       map[Face]*pixel.Sprite
}

func (sprites *Sprites) Sheet() pixel.Picture {
	return sprites.sheet
}

func AssetPath(dir string, face Face) string {
	return filepath.Join(dir, fmt.Sprintf("image%d.bmp", face))
}

// LoadSprites reads the placeholder and every face image from dir. Each image
// must be square.
func LoadSprites(dir string) (*Sprites, error) {
	images := make([]image.Image, 0, NumFaces+1)
	sheetWidth, sheetHeight := 0, 0

	for face := Placeholder; face <= NumFaces; face++ {
		path := AssetPath(dir, face)
		img, err := loadImage(path)
		if err != nil {
			return nil, err
		}

		size := img.Bounds().Size()
		if size.X != size.Y || size.X == 0 {
			return nil, errors.Errorf("asset %s is %dx%d; expected a square image", path, size.X, size.Y)
		}

		images = append(images, img)
		sheetWidth += size.X
		if size.Y > sheetHeight {
			sheetHeight = size.Y
		}
	}

	sheet := image.NewRGBA(image.Rect(0, 0, sheetWidth, sheetHeight))
	frames := make([]pixel.Rect, len(images))
	x := 0
	for i, img := range images {
		size := img.Bounds().Size()
		draw.Draw(sheet, image.Rect(x, 0, x+size.X, size.Y), img, img.Bounds().Min, draw.Src)

		// Picture coordinates grow upwards from the bottom of the sheet
		frames[i] = pixel.R(float64(x), float64(sheetHeight-size.Y), float64(x+size.X), float64(sheetHeight))
		x += size.X
	}

	picture := pixel.PictureDataFromImage(sheet)
	sprites := &Sprites{
		sheet:       picture,
		placeholder: pixel.NewSprite(picture, frames[0]),
		faces:       make(map[Face]*pixel.Sprite, NumFaces),
	}
	for face := Face(1); face <= NumFaces; face++ {
		sprites.faces[face] = pixel.NewSprite(picture, frames[face])
	}

	return sprites, nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading asset %s", path)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding asset %s", path)
	}
	return img, nil
}

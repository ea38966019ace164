package game

import (
	"fmt"

	"github.com/faiface/pixel"
)

type Tile struct {
	reveal RevealState

	row, col int
	idx      int
	face     Face
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%v, %v)", tile.row, tile.col)
}

func (tile *Tile) Row() int {
	return tile.row
}

func (tile *Tile) Col() int {
	return tile.col
}

func (tile *Tile) Index() int {
	return tile.idx
}

func (tile *Tile) IsRevealed() bool {
	return tile.reveal.IsRevealed(tile.idx)
}

// Face returns the tile's face, but only while it is face up
func (tile *Tile) Face() (Face, bool) {
	if !tile.IsRevealed() {
		return Placeholder, false
	}
	return tile.face, true
}

// Bounds of the tile on the canvas, with Y growing downwards from the top edge
func (tile *Tile) Bounds() pixel.Rect {
	x := float64((cellSize+cellGap)*tile.col + cellMargin)
	y := float64((cellSize+cellGap)*tile.row + cellMargin)
	return pixel.R(x, y, x+cellSize, y+cellSize)
}

func (tile *Tile) Center() pixel.Vec {
	bounds := tile.Bounds()
	return pixel.V((bounds.Min.X+bounds.Max.X)/2, (bounds.Min.Y+bounds.Max.Y)/2)
}

func (tile *Tile) contains(pos pixel.Vec) bool {
	bounds := tile.Bounds()
	return bounds.Min.X <= pos.X && pos.X < bounds.Max.X &&
		bounds.Min.Y <= pos.Y && pos.Y < bounds.Max.Y
}

// Collision reports whether a click landed on this tile while it is face down
func (tile *Tile) Collision(click pixel.Vec) bool {
	return tile.contains(click) && !tile.IsRevealed()
}

// Equals compares faces, regardless of whether either tile is revealed
func (tile *Tile) Equals(other *Tile) bool {
	return tile.face == other.face
}

func (tile *Tile) ChangeState(isRevealed bool) {
	tile.reveal[tile.idx] = isRevealed
}

// RevertPair turns this tile and the tile at otherIdx face down again
func (tile *Tile) RevertPair(otherIdx int) {
	tile.ChangeState(false)
	tile.reveal[otherIdx] = false
}

func (tile *Tile) Draw(target pixel.Target, sprites *Sprites, canvasHeight float64) {
	sprite := sprites.placeholder
	if tile.IsRevealed() {
		sprite = sprites.faces[tile.face]
	}

	center := tile.Center()
	pos := pixel.V(center.X, canvasHeight-center.Y)
	sprite.Draw(target, pixel.IM.Scaled(pixel.ZV, cellSize/sprite.Frame().W()).Moved(pos))
}

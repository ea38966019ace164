package random

import (
	"math/rand"

	"github.com/they4kman/gomemory/game"
)

// Director clicks face-down tiles in random order, without remembering
// anything it has seen
type Director struct {
	board *game.Board
	rand  *rand.Rand
}

func (director *Director) Start(board *game.Board) {
	director.board = board
	director.rand = rand.New(rand.NewSource(board.Seed()))
}

func (director *Director) Act() (*game.Tile, bool) {
	if director.board.MismatchPending() {
		return nil, false
	}

	tiles := director.board.Tiles()
	for _, i := range director.rand.Perm(len(tiles)) {
		if !tiles[i].IsRevealed() {
			return tiles[i], true
		}
	}
	return nil, false
}

func (director *Director) End() {
	director.board = nil
}

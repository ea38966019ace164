package memory

import (
	"math/rand"
	"sort"

	"github.com/gammazero/deque"
	"github.com/they4kman/gomemory/game"
	"github.com/they4kman/gomemory/util/collections"
)

// Director plays with perfect recall: every face it has seen is remembered,
// known pairs are cleared first, and unseen tiles are explored in a shuffled
// order.
type Director struct {
	board *game.Board

	seen  collections.Set[int]
	known map[game.Face][]int

	// Tile indexes not yet explored, in exploration order
	frontier deque.Deque
}

func (director *Director) Start(board *game.Board) {
	director.board = board
	director.seen = collections.NewSet[int]()
	director.known = make(map[game.Face][]int, game.NumFaces)
	director.frontier = deque.Deque{}

	rnd := rand.New(rand.NewSource(board.Seed()))
	for _, idx := range rnd.Perm(game.NumCells) {
		director.frontier.PushBack(idx)
	}
}

func (director *Director) observe(tiles []*game.Tile) {
	for _, tile := range tiles {
		face, isRevealed := tile.Face()
		if !isRevealed || director.seen.Contains(tile.Index()) {
			continue
		}
		director.seen.Add(tile.Index())
		director.known[face] = append(director.known[face], tile.Index())
	}
}

func (director *Director) Act() (*game.Tile, bool) {
	tiles := director.board.Tiles()
	director.observe(tiles)

	if director.board.MismatchPending() {
		return nil, false
	}

	if firstIdx, isAwaiting := director.board.Selection().Pending(); isAwaiting {
		face, _ := tiles[firstIdx].Face()
		for _, idx := range director.known[face] {
			if idx != firstIdx && !tiles[idx].IsRevealed() {
				return tiles[idx], true
			}
		}
		return director.explore(tiles)
	}

	for face := game.Face(1); face <= game.NumFaces; face++ {
		indexes := director.known[face]
		if len(indexes) == 2 && !tiles[indexes[0]].IsRevealed() && !tiles[indexes[1]].IsRevealed() {
			return tiles[indexes[0]], true
		}
	}

	return director.explore(tiles)
}

// explore picks the next face-down tile that has never been seen
func (director *Director) explore(tiles []*game.Tile) (*game.Tile, bool) {
	for director.frontier.Len() > 0 {
		idx := director.frontier.PopFront().(int)
		if !director.seen.Contains(idx) && !tiles[idx].IsRevealed() {
			return tiles[idx], true
		}
	}

	// A tile handed out earlier may never have been clicked, so the frontier
	// can run dry early. Prefer face-down tiles still unseen.
	hidden := collections.NewSet[int]()
	for _, tile := range tiles {
		if !tile.IsRevealed() {
			hidden.Add(tile.Index())
		}
	}
	candidates := hidden.Difference(director.seen)
	if candidates.Len() == 0 {
		candidates = hidden
	}
	if candidates.Len() == 0 {
		return nil, false
	}

	indexes := candidates.Slice()
	sort.Ints(indexes)
	return tiles[indexes[0]], true
}

func (director *Director) End() {
	director.frontier = deque.Deque{}
}

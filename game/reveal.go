package game

// RevealState maps a cell index to whether its face is shown. Tiles share
// the board's RevealState and read and write it by index.
type RevealState []bool

func newRevealState() RevealState {
	return make(RevealState, NumCells)
}

func (reveal RevealState) IsRevealed(idx int) bool {
	return reveal[idx]
}

func (reveal RevealState) NumHidden() int {
	hidden := 0
	for _, isRevealed := range reveal {
		if !isRevealed {
			hidden++
		}
	}
	return hidden
}

func (reveal RevealState) AllRevealed() bool {
	return reveal.NumHidden() == 0
}

// Clone returns a copy not shared with any board
func (reveal RevealState) Clone() RevealState {
	clone := make(RevealState, len(reveal))
	copy(clone, reveal)
	return clone
}

// Selection is the first tile of a pair, awaiting its partner. The zero value
// holds no tile.
type Selection struct {
	idx      int
	awaiting bool
}

func (selection Selection) Pending() (int, bool) {
	return selection.idx, selection.awaiting
}

func (selection Selection) IsEmpty() bool {
	return !selection.awaiting
}

func awaitingPartner(idx int) Selection {
	return Selection{idx: idx, awaiting: true}
}

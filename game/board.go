package game

import (
	"math/rand"
	"time"

	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
)

// NoClick is the sentinel pending click. It lies in the board margin, so no
// tile ever collides with it.
var NoClick = pixel.ZV

type pendingMismatch struct {
	first, second int
	deadline      time.Time
}

type Board struct {
	seed  int64
	rand  *rand.Rand
	faces FaceSet
	tiles []Tile

	reveal    RevealState
	selection Selection
	mismatch  *pendingMismatch
	click     pixel.Vec

	state         BoardState
	timer         *Timer
	mismatchDelay time.Duration

	moves, mismatches uint

	director  Director
	onGameEnd func(*Board)
	log       logrus.FieldLogger
}

type boardConfig struct {
	Seed          int64
	Faces         FaceSet
	Revealed      []bool
	MismatchDelay time.Duration
	Director      Director
	OnGameEnd     func(*Board)
	Log           logrus.FieldLogger
	Start         time.Time
}

func createBoard(config boardConfig) *Board {
	board := &Board{
		seed:          config.Seed,
		rand:          rand.New(rand.NewSource(config.Seed)),
		reveal:        newRevealState(),
		click:         NoClick,
		state:         Ongoing,
		timer:         NewTimer(config.Start),
		mismatchDelay: config.MismatchDelay,
		director:      config.Director,
		onGameEnd:     config.OnGameEnd,
		log:           config.Log,
	}
	if board.log == nil {
		board.log = logrus.StandardLogger()
	}

	// The shuffle always consumes the board's rand, so a snapshot's seed
	// yields the same follow-up seeds as the game it was taken from.
	board.faces = newFaceSet(board.rand)
	if config.Faces != nil {
		board.faces = append(FaceSet(nil), config.Faces...)
	}
	copy(board.reveal, config.Revealed)

	board.tiles = make([]Tile, NumCells)
	for idx := range board.tiles {
		board.tiles[idx] = Tile{
			reveal: board.reveal,
			row:    idx / BoardSize,
			col:    idx % BoardSize,
			idx:    idx,
			face:   board.faces[idx],
		}
	}

	return board
}

func (board *Board) Seed() int64 {
	return board.seed
}

// NextSeed draws the seed of a follow-up game from this board's rand
func (board *Board) NextSeed() int64 {
	return board.rand.Int63()
}

func (board *Board) Faces() FaceSet {
	return append(FaceSet(nil), board.faces...)
}

func (board *Board) Tiles() []*Tile {
	tiles := make([]*Tile, len(board.tiles))
	for idx := range board.tiles {
		tiles[idx] = &board.tiles[idx]
	}
	return tiles
}

func (board *Board) TileAt(row, col int) *Tile {
	if row >= 0 && col >= 0 && row < BoardSize && col < BoardSize {
		return &board.tiles[row*BoardSize+col]
	}
	return nil
}

// Reveal returns a copy of the reveal flags
func (board *Board) Reveal() RevealState {
	return board.reveal.Clone()
}

func (board *Board) Selection() Selection {
	return board.selection
}

func (board *Board) MismatchPending() bool {
	return board.mismatch != nil
}

// PendingMismatch returns the indexes of the mismatched pair waiting to be
// turned face down
func (board *Board) PendingMismatch() (int, int, bool) {
	if board.mismatch == nil {
		return 0, 0, false
	}
	return board.mismatch.first, board.mismatch.second, true
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) CanPlay() bool {
	return board.state == Ongoing
}

func (board *Board) Timer() *Timer {
	return board.timer
}

func (board *Board) Moves() uint {
	return board.moves
}

func (board *Board) Mismatches() uint {
	return board.mismatches
}

// ScreenToCanvas flips a window position (Y up) into canvas coordinates (Y down)
func ScreenToCanvas(pos pixel.Vec, canvasHeight float64) pixel.Vec {
	return pixel.V(pos.X, canvasHeight-pos.Y)
}

// Click records a pending click, in canvas coordinates, for the next Update
func (board *Board) Click(pos pixel.Vec) {
	board.click = pos
}

// Step advances the board by one frame. It returns whether play continues.
func (board *Board) Step(now time.Time) bool {
	if !board.CanPlay() {
		return false
	}

	board.timer.Sample(now)
	board.Update(now)
	return board.DecideContinue()
}

// Update applies the pending click, if any, and consumes it
func (board *Board) Update(now time.Time) {
	defer func() {
		board.click = NoClick
	}()

	if board.mismatch != nil {
		if now.Before(board.mismatch.deadline) {
			return
		}
		board.rollback()
	}

	for idx := range board.tiles {
		tile := &board.tiles[idx]
		if tile.Collision(board.click) {
			board.flip(tile, now)
			return
		}
	}
}

func (board *Board) flip(tile *Tile, now time.Time) {
	tile.ChangeState(true)
	board.moves++

	log := board.log.WithFields(logrus.Fields{
		"tile":  tile.String(),
		"face":  tile.face,
		"moves": board.moves,
	})

	firstIdx, isAwaiting := board.selection.Pending()
	if !isAwaiting {
		board.selection = awaitingPartner(tile.idx)
		log.Debug("First tile of pair flipped")
		return
	}

	board.selection = Selection{}
	first := &board.tiles[firstIdx]
	if tile.Equals(first) {
		log.WithField("partner", first.String()).Debug("Pair matched")
		return
	}

	board.mismatches++
	board.mismatch = &pendingMismatch{
		first:    firstIdx,
		second:   tile.idx,
		deadline: now.Add(board.mismatchDelay),
	}
	log.WithField("partner", first.String()).Debug("Pair mismatched")
}

func (board *Board) rollback() {
	mismatch := board.mismatch
	board.mismatch = nil

	board.tiles[mismatch.second].RevertPair(mismatch.first)
	board.log.WithFields(logrus.Fields{
		"first":  board.tiles[mismatch.first].String(),
		"second": board.tiles[mismatch.second].String(),
	}).Debug("Mismatched pair hidden")
}

// DecideContinue ends the game once every tile is permanently face up, and
// reports whether play continues
func (board *Board) DecideContinue() bool {
	if board.CanPlay() && board.mismatch == nil && board.reveal.AllRevealed() {
		board.win()
	}
	return board.CanPlay()
}

func (board *Board) win() {
	board.state = Won
	board.timer.Freeze()
	board.log.WithFields(logrus.Fields{
		"seconds":    board.timer.Seconds(),
		"moves":      board.moves,
		"mismatches": board.mismatches,
	}).Info("All pairs matched")
	board.endGame()
}

func (board *Board) startGame() {
	if board.director != nil {
		board.director.Start(board)
	}
}

func (board *Board) endGame() {
	if board.director != nil {
		board.director.End()
	}
	if board.onGameEnd != nil {
		board.onGameEnd(board)
	}
}

// RequestDirectorAct asks the director for a tile and clicks it. It returns
// the clicked tile, or nil when the director had nothing to do.
func (board *Board) RequestDirectorAct() *Tile {
	if board.director == nil || !board.CanPlay() {
		return nil
	}

	tile, ok := board.director.Act()
	if !ok || tile == nil {
		return nil
	}
	board.Click(tile.Center())
	return tile
}

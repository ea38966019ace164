package game

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var testStart = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

// testFaces lays out pairs so that (0,0)/(0,1) match and (0,0)/(1,1) do not
var testFaces = FaceSet{
	1, 1, 2, 2,
	3, 4, 3, 4,
	5, 5, 6, 6,
	7, 7, 8, 8,
}

// testPairs lists the matching (row, col) pairs of testFaces
var testPairs = [][2][2]int{
	{{0, 0}, {0, 1}},
	{{0, 2}, {0, 3}},
	{{1, 0}, {1, 2}},
	{{1, 1}, {1, 3}},
	{{2, 0}, {2, 1}},
	{{2, 2}, {2, 3}},
	{{3, 0}, {3, 1}},
	{{3, 2}, {3, 3}},
}

func newTestBoard(t *testing.T, config boardConfig) (*Board, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	// A seeded board without explicit faces is shuffled as usual
	if config.Faces == nil && config.Seed == 0 {
		config.Faces = testFaces
	}
	if config.MismatchDelay == 0 {
		config.MismatchDelay = time.Second
	}
	config.Log = logger
	config.Start = testStart

	return createBoard(config), hook
}

// clickAt clicks the center of a tile and steps the board
func clickAt(board *Board, row, col int, now time.Time) bool {
	board.Click(board.TileAt(row, col).Center())
	return board.Step(now)
}

func hasMessage(hook *test.Hook, message string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Message == message {
			return true
		}
	}
	return false
}

package game

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Seed int64

	// Directory holding image0.bmp (face down) and image1.bmp through image8.bmp
	AssetsDir string

	// How long a mismatched pair stays face up
	MismatchDelay time.Duration
	FPS           int

	// Snapshot to load board layout from
	Snapshot *BoardSnapshot
	// Whether to turn every tile face down when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director
	// Time between two director clicks
	DirectorInterval time.Duration

	// Transparency of annotations when first displayed
	AnnotationBaseAlpha float64
	// Total time an annotation will be displayed
	AnnotationDuration time.Duration

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string

	Log logrus.FieldLogger
}

const defaultFPS = 60

func NewGameConfig() GameConfig {
	return GameConfig{
		AssetsDir:           executableDir(),
		MismatchDelay:       time.Second,
		FPS:                 defaultFPS,
		Director:            nil,
		DirectorInterval:    500 * time.Millisecond,
		Snapshot:            nil,
		LoadSnapshotFresh:   true,
		AnnotationBaseAlpha: 0.5,
		AnnotationDuration:  400 * time.Millisecond,
		Log:                 logrus.StandardLogger(),
	}
}

// FrameInterval is the time budget of a single frame. A non-positive FPS
// falls back to the default rate.
func (config GameConfig) FrameInterval() time.Duration {
	fps := config.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}

func executableDir() string {
	path, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Dir(path)
}

// CreateBoard builds a board from the Snapshot if one is set, or from a fresh
// shuffle of Seed otherwise, and starts the director on it
func (config GameConfig) CreateBoard(start time.Time) (*Board, error) {
	options := boardConfig{
		Seed:          config.Seed,
		MismatchDelay: config.MismatchDelay,
		Director:      config.Director,
		OnGameEnd:     config.onGameEnd,
		Log:           config.Log,
		Start:         start,
	}

	var board *Board
	if config.Snapshot == nil {
		board = createBoard(options)
	} else {
		var err error
		board, err = config.Snapshot.CreateBoard(options, config.LoadSnapshotFresh)
		if err != nil {
			return nil, err
		}
	}

	board.startGame()
	return board, nil
}

func (config GameConfig) onGameEnd(board *Board) {
	if err := config.saveSnapshot(board, time.Now()); err != nil {
		board.log.WithError(err).Warn("Could not save board snapshot")
	}
}

func (config GameConfig) saveSnapshot(board *Board, t time.Time) error {
	if config.SavedSnapshotsDir == "" {
		return nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.WithStack(err)
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return errors.Wrap(err, "creating snapshots directory")
		}
	} else if !stat.Mode().IsDir() {
		return errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	filename := config.generateReplayFilename(board, t)
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return err
	}

	// TODO: prevent duplicate filenames when two games end within the same second
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		return errors.Wrapf(err, "writing snapshot %s", path)
	}

	board.log.WithField("path", path).Info("Saved board snapshot")
	return nil
}

func (config GameConfig) generateReplayFilename(board *Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch board.state {
	case Won:
		stateStr = "win"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestCreateBoardIsDeterministicPerSeed(t *testing.T) {
	config := NewGameConfig()
	config.Seed = 1234

	a, err := config.CreateBoard(testStart)
	if err != nil {
		t.Fatal(err)
	}
	b, err := config.CreateBoard(testStart)
	if err != nil {
		t.Fatal(err)
	}

	facesA, facesB := a.Faces(), b.Faces()
	for idx := range facesA {
		if facesA[idx] != facesB[idx] {
			t.Fatalf("seed 1234 produced %v and %v", facesA, facesB)
		}
	}
}

func TestCreateBoardFromSnapshot(t *testing.T) {
	config := NewGameConfig()
	config.Snapshot = &BoardSnapshot{Seed: 5, SerializedBoard: "11bb\ncdcd\neeff\ngghh"}
	config.LoadSnapshotFresh = false

	board, err := config.CreateBoard(testStart)
	if err != nil {
		t.Fatal(err)
	}
	if board.Seed() != 5 {
		t.Errorf("expected seed 5, got %d", board.Seed())
	}
	if !board.TileAt(0, 0).IsRevealed() || board.TileAt(0, 2).IsRevealed() {
		t.Error("expected only the recorded pair to be face up")
	}

	config.Snapshot = &BoardSnapshot{SerializedBoard: "nonsense"}
	if _, err := config.CreateBoard(testStart); err == nil {
		t.Error("expected an invalid snapshot to fail")
	}
}

func TestGameEndSavesSnapshot(t *testing.T) {
	logger, hook := test.NewNullLogger()

	config := NewGameConfig()
	config.SavedSnapshotsDir = filepath.Join(t.TempDir(), "snapshots")
	config.Snapshot = &BoardSnapshot{Seed: 3, SerializedBoard: "1122\n3434\n5566\n77hh"}
	config.LoadSnapshotFresh = false
	config.Log = logger

	board, err := config.CreateBoard(testStart)
	if err != nil {
		t.Fatal(err)
	}
	clickAt(board, 3, 2, testStart)
	if clickAt(board, 3, 3, testStart) {
		t.Fatal("expected the last pair to end the game")
	}

	entries, err := os.ReadDir(config.SavedSnapshotsDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), "_win.yaml") {
		t.Fatalf("expected one *_win.yaml snapshot, got %v", entries)
	}

	contents, err := os.ReadFile(filepath.Join(config.SavedSnapshotsDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	saved, err := LoadSnapshot(string(contents))
	if err != nil {
		t.Fatal(err)
	}
	if saved.Seed != 3 || saved.SerializedBoard != "1122\n3434\n5566\n7788" {
		t.Errorf("unexpected saved snapshot %+v", saved)
	}
	if !hasMessage(hook, "Saved board snapshot") {
		t.Error("expected the saved snapshot to be logged")
	}
}

func TestSaveSnapshotIntoFileFails(t *testing.T) {
	logger, hook := test.NewNullLogger()
	notADir := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(notADir, nil, 0666); err != nil {
		t.Fatal(err)
	}

	config := NewGameConfig()
	config.SavedSnapshotsDir = notADir
	config.Log = logger

	board, err := config.CreateBoard(testStart)
	if err != nil {
		t.Fatal(err)
	}
	if err := config.saveSnapshot(board, testStart); err == nil {
		t.Error("expected saving into a regular file to fail")
	}

	// The end hook only warns
	config.onGameEnd(board)
	if !hasMessage(hook, "Could not save board snapshot") {
		t.Error("expected a warning to be logged")
	}
}

func TestGenerateReplayFilename(t *testing.T) {
	config := NewGameConfig()
	board, _ := newTestBoard(t, boardConfig{})

	at := time.Date(2026, time.March, 4, 5, 6, 7, 0, time.UTC)
	if name := config.generateReplayFilename(board, at); name != "20260304_050607_other.yaml" {
		t.Errorf("unexpected filename %s", name)
	}

	board.win()
	if name := config.generateReplayFilename(board, at); name != "20260304_050607_win.yaml" {
		t.Errorf("unexpected filename %s", name)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps      int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tt := range tests {
		config := NewGameConfig()
		config.FPS = tt.fps
		if interval := config.FrameInterval(); interval != tt.expected {
			t.Errorf("FPS %d: expected %v, got %v", tt.fps, tt.expected, interval)
		}
	}
}

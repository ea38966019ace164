package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "serializing snapshot")
	}

	return string(out), nil
}

// Snapshot records the seed and layout of the board. Only matched pairs are
// recorded as face up.
func (board *Board) Snapshot() *BoardSnapshot {
	matched := board.reveal.Clone()
	if idx, isAwaiting := board.selection.Pending(); isAwaiting {
		matched[idx] = false
	}
	if board.mismatch != nil {
		matched[board.mismatch.first] = false
		matched[board.mismatch.second] = false
	}

	var rows strings.Builder
	for idx, tile := range board.tiles {
		if idx > 0 && idx%BoardSize == 0 {
			rows.WriteByte('\n')
		}
		rows.WriteByte(serializeTile(tile.face, matched[idx]))
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: rows.String(),
	}
}

func serializeTile(face Face, isRevealed bool) byte {
	if isRevealed {
		return byte('0' + face)
	}
	return byte('a' + face - 1)
}

func deserializeTile(c byte) (Face, bool, bool) {
	switch {
	case c >= '1' && c < '1'+NumFaces:
		return Face(c - '0'), true, true
	case c >= 'a' && c < 'a'+NumFaces:
		return Face(c-'a') + 1, false, true
	default:
		return Placeholder, false, false
	}
}

func (snapshot *BoardSnapshot) CreateBoard(config boardConfig, fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != BoardSize {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "expected %d rows, got %d", BoardSize, len(rows))
	}

	faces := make(FaceSet, 0, NumCells)
	revealed := make([]bool, 0, NumCells)
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != BoardSize {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, expected %d", y, len(row), BoardSize)
		}

		for x := 0; x < len(row); x++ {
			face, isRevealed, ok := deserializeTile(row[x])
			if !ok {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at (%d, %d)", row[x], y, x)
			}
			faces = append(faces, face)
			revealed = append(revealed, isRevealed && !fresh)
		}
	}

	if err := faces.validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}

	// Only whole pairs may be face up
	revealedPerFace := make(map[Face]int, NumFaces)
	for idx, isRevealed := range revealed {
		if isRevealed {
			revealedPerFace[faces[idx]]++
		}
	}
	for face, count := range revealedPerFace {
		if count != 2 {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "face %d is revealed without its partner", face)
		}
	}

	config.Seed = snapshot.Seed
	config.Faces = faces
	config.Revealed = revealed
	return createBoard(config), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing snapshot")
	}
	return &snapshot, nil
}

package game

type Face int
type BoardState int

// Placeholder is the asset id of the face-down image. It never appears in a FaceSet.
const Placeholder Face = 0

const (
	Ongoing BoardState = iota
	Won
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

const (
	// BoardSize is the number of rows and columns of the board
	BoardSize = 4
	NumCells  = BoardSize * BoardSize
	NumFaces  = NumCells / 2

	CanvasWidth  = 520
	CanvasHeight = 415

	// Tiles are square and evenly tile the canvas height
	cellSize   = CanvasHeight / BoardSize
	cellGap    = 1
	cellMargin = 2
)

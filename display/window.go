package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/gammazero/deque"
	"github.com/pkg/errors"
	"github.com/they4kman/gomemory/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const canvasHeight = float64(game.CanvasHeight)

type Annotation struct {
	Tile       *game.Tile
	firstShown time.Time
}

// Run opens the game window and plays until it is closed. It must be called
// from the function passed to pixelgl.Run.
func Run(config game.GameConfig) error {
	log := config.Log

	sprites, err := game.LoadSprites(config.AssetsDir)
	if err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Memory",
		Bounds: pixel.R(0, 0, game.CanvasWidth, game.CanvasHeight),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer win.Destroy()

	batch := pixel.NewBatch(&pixel.TrianglesData{}, sprites.Sheet())

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	timerText := text.New(pixel.ZV, basicAtlas)
	timerText.Color = colornames.White
	statusText := text.New(pixel.V(game.CanvasWidth-92, canvasHeight-90), basicAtlas)

	var (
		board           *game.Board
		annotations     deque.Deque
		lastDirectorAct time.Time
	)
	resetBoard := func() error {
		newBoard, err := config.CreateBoard(time.Now())
		if err != nil {
			return err
		}
		board = newBoard
		annotations = deque.Deque{}
		log.WithField("seed", board.Seed()).Info("Starting new game")
		return nil
	}

	if err := resetBoard(); err != nil {
		return err
	}

	var (
		frames    = 0
		second    = time.Tick(time.Second)
		frameTick = time.Tick(config.FrameInterval())
	)

	bgColor := colornames.Black
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)
		now := time.Now()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if board.CanPlay() && mouseReleased(win) {
			board.Click(game.ScreenToCanvas(win.MousePosition(), canvasHeight))
		}

		batch.Clear()
		for _, tile := range board.Tiles() {
			tile.Draw(batch, sprites, canvasHeight)
		}
		batch.Draw(win)

		drawHighlights(win, board)
		drawAnnotations(win, &annotations, config, now)
		drawTimer(win, timerText, board.Timer())

		statusText.Clear()
		if !board.CanPlay() {
			statusText.Color = colornames.Green
			fmt.Fprintln(statusText, "WIN!")
			statusText.Color = colornames.White
			fmt.Fprintln(statusText, "Enter:")
			fmt.Fprint(statusText, "new game")
			statusText.Draw(win, pixel.IM.Scaled(statusText.Orig, 1.5))
		}

		if board.CanPlay() {
			if config.Director != nil && now.Sub(lastDirectorAct) >= config.DirectorInterval {
				lastDirectorAct = now
				if tile := board.RequestDirectorAct(); tile != nil {
					annotations.PushBack(Annotation{Tile: tile, firstShown: now})
				}
			}

			board.Step(now)
		} else if win.JustPressed(pixelgl.KeyEnter) {
			// Start a new game with Enter
			config.Seed = board.NextSeed()
			config.Snapshot = nil
			if err := resetBoard(); err != nil {
				return err
			}
		}

		<-frameTick
	}

	log.Debug("Window closed")
	return nil
}

func mouseReleased(win *pixelgl.Window) bool {
	return win.JustReleased(pixelgl.MouseButtonLeft) ||
		win.JustReleased(pixelgl.MouseButtonRight) ||
		win.JustReleased(pixelgl.MouseButtonMiddle)
}

// windowRect converts a tile's canvas bounds into window coordinates
func windowRect(tile *game.Tile) (pixel.Vec, pixel.Vec) {
	bounds := tile.Bounds()
	return pixel.V(bounds.Min.X, canvasHeight-bounds.Max.Y), pixel.V(bounds.Max.X, canvasHeight-bounds.Min.Y)
}

// drawHighlights outlines the tile awaiting its partner, and a mismatched
// pair until it is turned back over
func drawHighlights(target pixel.Target, board *game.Board) {
	imd := imdraw.New(nil)

	if idx, isAwaiting := board.Selection().Pending(); isAwaiting {
		start, end := windowRect(board.Tiles()[idx])
		imd.Color = colornames.Gold
		imd.Push(start, end)
		imd.Rectangle(2)
	}

	if first, second, isPending := board.PendingMismatch(); isPending {
		tiles := board.Tiles()
		imd.Color = colornames.Red
		for _, idx := range []int{first, second} {
			start, end := windowRect(tiles[idx])
			imd.Push(start, end)
			imd.Rectangle(2)
		}
	}

	imd.Draw(target)
}

func drawAnnotations(target pixel.Target, annotations *deque.Deque, config game.GameConfig, now time.Time) {
	if annotations.Len() == 0 {
		return
	}

	imd := imdraw.New(nil)
	for annotations.Len() > 0 {
		annotation := annotations.Front().(Annotation)
		if now.Sub(annotation.firstShown) <= config.AnnotationDuration {
			break
		}
		annotations.PopFront()
	}

	for i := 0; i < annotations.Len(); i++ {
		annotation := annotations.At(i).(Annotation)
		timeShown := now.Sub(annotation.firstShown)

		progress := 1 - float64(timeShown)/float64(config.AnnotationDuration)
		alpha := config.AnnotationBaseAlpha * InOutCubic(progress)

		start, end := windowRect(annotation.Tile)
		imd.Color = pixel.RGB(0, 0.6, 1).Mul(pixel.Alpha(alpha))
		imd.Push(start, end)
		imd.Rectangle(0) // 0 = filled
	}

	imd.Draw(target)
}

// drawTimer renders elapsed seconds, right-aligned against the top edge
func drawTimer(target pixel.Target, txt *text.Text, timer *game.Timer) {
	const scale = 4

	elapsed := timer.String()
	txt.Clear()
	fmt.Fprint(txt, elapsed)

	width := txt.BoundsOf(elapsed).W() * scale
	pos := pixel.V(game.CanvasWidth-width-4, canvasHeight-txt.LineHeight*scale)
	txt.Draw(target, pixel.IM.Scaled(pixel.ZV, scale).Moved(pos))
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}

package renderer

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"retropong/internal/ansii"
	"retropong/internal/config"
	"retropong/internal/pong"
)

// Tcell renders through a tcell screen and reads its key events. It is both
// the renderer and the input source for the match.
type Tcell struct {
	*KeyState

	screen tcell.Screen
	scene  Scene
	canvas *ansii.Canvas
}

func NewTcell(fx config.Effects, jitter pong.Source, hold time.Duration) (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return newTcell(screen, fx, jitter, hold), nil
}

func newTcell(screen tcell.Screen, fx config.Effects, jitter pong.Source, hold time.Duration) *Tcell {
	return &Tcell{
		KeyState: NewKeyState(hold),
		screen:   screen,
		scene:    Scene{Effects: fx, Jitter: jitter},
		canvas:   ansii.NewCanvas(0, 0),
	}
}

func (t *Tcell) Open() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			t.handleEvent(ev)
		}
	}()
	return nil
}

func (t *Tcell) Close() error {
	t.screen.Fini()
	return nil
}

func (t *Tcell) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.Press(keyAction(ev))
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func keyAction(ev *tcell.EventKey) UiAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyUp:
		return RightUp
	case tcell.KeyDown:
		return RightDown
	case tcell.KeyRune:
		return runeAction(ev.Rune())
	}
	return Unknown
}

func (t *Tcell) Render(frame pong.Frame) {
	width, height := t.screen.Size()
	if width != t.canvas.Width || height != t.canvas.Height {
		t.canvas.Resize(width, height)
	}

	t.scene.Compose(t.canvas, frame)

	for y := 0; y < t.canvas.Height; y++ {
		for x := 0; x < t.canvas.Width; x++ {
			cell := t.canvas.At(x, y)
			if cell.Rune == 0 {
				t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			fg := tcell.NewRGBColor(int32(cell.FG.R), int32(cell.FG.G), int32(cell.FG.B))
			t.screen.SetContent(x, y, cell.Rune, nil, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
		}
	}
	t.screen.Show()
}

package renderer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/term"

	"retropong/internal/ansii"
	"retropong/internal/config"
	"retropong/internal/pong"
)

// Terminal draws frames to a raw ANSI terminal.
type Terminal struct {
	out     io.Writer
	scene   Scene
	canvas  *ansii.Canvas
	builder strings.Builder
	size    func() (int, int)

	prev *term.State
}

func NewTerminal(out io.Writer, fx config.Effects, jitter pong.Source) *Terminal {
	return &Terminal{
		out:    out,
		scene:  Scene{Effects: fx, Jitter: jitter},
		canvas: ansii.NewCanvas(0, 0),
		size:   ansii.GetTermSize,
	}
}

// Open switches the terminal to raw mode on the alternate screen.
func (t *Terminal) Open() error {
	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return fmt.Errorf("failed to make terminal raw: %w", err)
	}
	t.prev = prev

	io.WriteString(t.out, string(ansii.Screen.AltScreen+ansii.Screen.HideCursor+ansii.Screen.ClearScreen))
	return nil
}

func (t *Terminal) Close() error {
	io.WriteString(t.out, string(ansii.Styles.Reset+ansii.Screen.ShowCursor+ansii.Screen.MainScreen))
	if t.prev == nil {
		return nil
	}
	err := ansii.RestoreTerm(t.prev)
	t.prev = nil
	return err
}

func (t *Terminal) Render(frame pong.Frame) {
	width, height := t.size()
	if width != t.canvas.Width || height != t.canvas.Height {
		t.canvas.Resize(width, height)
		io.WriteString(t.out, string(ansii.Screen.ClearScreen))
	}

	t.scene.Compose(t.canvas, frame)

	t.builder.Reset()
	t.canvas.Flush(&t.builder)
	if _, err := io.WriteString(t.out, t.builder.String()); err != nil {
		slog.Debug("failed to write frame", slog.Any("error", err))
	}
}

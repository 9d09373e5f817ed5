package ansii

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	bold        ANSI = "\033[1m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	clearScreen ANSI = "\033[2J"
	cursorHome  ANSI = "\033[H"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
	altScreen   ANSI = "\033[?1049h"
	mainScreen  ANSI = "\033[?1049l"
)

type style struct {
	Reset ANSI
	Bold  ANSI
}

type color struct {
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
}

type screen struct {
	ClearScreen ANSI
	CursorHome  ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
	AltScreen   ANSI
	MainScreen  ANSI
}

type ascii struct {
	Block     string
	Shade     string
	Light     string
	Ball      string
	Dash      string
	GridPoint string
}

var (
	Styles = style{Bold: bold, Reset: reset}
	Colors = color{Red: red, Green: green, Yellow: yellow, Blue: blue}
	Screen = screen{ClearScreen: clearScreen, CursorHome: cursorHome, HideCursor: hideCursor, ShowCursor: showCursor, AltScreen: altScreen, MainScreen: mainScreen}
	Blocks = ascii{Block: "█", Shade: "▓", Light: "▒", Ball: "●", Dash: "┃", GridPoint: "·"}
)

func (s screen) PlaceCursor(X, Y int) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", Y, X))
}

// Foreground is a 24-bit foreground color escape.
func Foreground(c RGB) ANSI {
	return ANSI(fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B))
}

// GetTermSize returns the size of stdout, or 80x24 when it is not a terminal.
func GetTermSize() (width int, height int) {
	var fd int = int(os.Stdout.Fd())
	width, height, err := term.GetSize(fd)
	if err != nil {
		slog.Debug("error getting terminal size, assuming 80x24", slog.Any("error", err))
		return 80, 24
	}
	return width, height
}

func MakeTermRaw() (*term.State, error) {
	var fd int = int(os.Stdin.Fd())
	return term.MakeRaw(fd)
}

func RestoreTerm(prev *term.State) error {
	var fd int = int(os.Stdin.Fd())
	return term.Restore(fd, prev)
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"retropong/internal/pong"
)

// Keyboard is the slice of ebiten's input state the game reads.
type Keyboard interface {
	IsKeyPressed(ebiten.Key) bool
	IsKeyJustPressed(ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// ReadInput samples the controls. Movement keys count while held, reset and
// quit only on the tick they go down.
func ReadInput(k Keyboard) pong.Input {
	return pong.Input{
		LeftUp:    k.IsKeyPressed(ebiten.KeyW),
		LeftDown:  k.IsKeyPressed(ebiten.KeyS),
		RightUp:   k.IsKeyPressed(ebiten.KeyArrowUp),
		RightDown: k.IsKeyPressed(ebiten.KeyArrowDown),
		Reset:     k.IsKeyJustPressed(ebiten.KeySpace),
		Quit:      k.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

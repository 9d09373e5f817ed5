package desktop

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"retropong/internal/config"
	"retropong/internal/pong"
)

// Game adapts a Match to ebiten's loop. ebiten calls Update at a fixed tick
// rate, but the match is still fed the measured wall-clock delta so the
// simulation clock decides how many steps to run.
type Game struct {
	match  *pong.Match
	cfg    config.Configuration
	audio  pong.Audio
	jitter pong.Source
	keys   Keyboard
	now    func() time.Time
	last   time.Time

	score *ebiten.Image
}

// NewGame wires the match to ebiten. sounds may be nil.
func NewGame(match *pong.Match, sounds pong.Audio, jitter pong.Source) *Game {
	return &Game{
		match:  match,
		cfg:    match.Config(),
		audio:  sounds,
		jitter: jitter,
		keys:   ebitenKeyboard{},
		now:    time.Now,
	}
}

func (g *Game) Update() error {
	if g.keys.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	now := g.now()
	dt := g.cfg.FixedStep()
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	res := g.match.Frame(dt, ReadInput(g.keys))
	if g.audio != nil {
		for _, ev := range res.Events {
			g.audio.Trigger(ev)
		}
	}

	if res.State == pong.Terminated {
		slog.Info("window closing", slog.String("match", g.match.ID().String()))
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.draw(screen, g.match.View())
}

// Layout keeps the logical screen at field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Field.Width), int(g.cfg.Field.Height)
}

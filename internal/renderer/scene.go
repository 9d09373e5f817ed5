package renderer

import (
	"math"
	"strconv"
	"unicode/utf8"

	"retropong/internal/ansii"
	"retropong/internal/config"
	"retropong/internal/pong"
)

var (
	black    = ansii.RGB{}
	white    = ansii.RGB{R: 255, G: 255, B: 255}
	green    = ansii.RGB{G: 255}
	blue     = ansii.RGB{G: 100, B: 255}
	yellow   = ansii.RGB{R: 255, G: 255}
	gridGray = ansii.RGB{R: 40, G: 40, B: 40}
)

const (
	gridSpacing   = 32.0
	dashPeriod    = 20.0
	dashLength    = 10.0
	scoreTop      = 50.0
	blurAlpha     = 100.0 / 255.0
	trailMaxAlpha = 0.3
	scanlineAlpha = 30.0 / 255.0
	jitterAlpha   = 10.0 / 255.0
	jitterMax     = 50
)

// Scene composes snapshots onto a character canvas. It scales field
// coordinates to cells and applies the enabled effects.
type Scene struct {
	Effects config.Effects
	// Jitter picks the color tint each frame. Required when Effects.Jitter is set.
	Jitter pong.Source

	sx, sy float64
}

func (s *Scene) cell(x, y float64) (int, int) {
	return int(x * s.sx), int(y * s.sy)
}

// span maps a field length to a whole number of cells, never less than one.
func span(length, scale float64) int {
	return max(int(length*scale+0.5), 1)
}

func glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// TrailAlpha is the opacity of trail point i out of n, oldest first.
func TrailAlpha(i, n int) float64 {
	return float64(i+1) / float64(n) * trailMaxAlpha
}

// Compose draws frame onto c, which must already be sized to the terminal.
func (s *Scene) Compose(c *ansii.Canvas, frame pong.Frame) {
	cur := frame.Current
	c.Clear()
	if c.Width == 0 || c.Height == 0 || cur.Width <= 0 || cur.Height <= 0 {
		return
	}
	s.sx = float64(c.Width) / cur.Width
	s.sy = float64(c.Height) / cur.Height

	if s.Effects.Grid {
		s.drawGrid(c, cur)
	}
	s.drawPaddle(c, cur.Left, green)
	s.drawPaddle(c, cur.Right, blue)
	s.drawBall(c, frame)
	s.drawUI(c, cur)

	if s.Effects.Scanlines {
		for y := 0; y < c.Height; y += 2 {
			c.Map(y, func(v ansii.RGB) ansii.RGB { return v.Blend(black, scanlineAlpha) })
		}
	}
	if s.Effects.Jitter && s.Jitter != nil {
		tint := ansii.RGB{
			R: uint8(s.Jitter.Intn(jitterMax + 1)),
			G: uint8(s.Jitter.Intn(jitterMax + 1)),
			B: uint8(s.Jitter.Intn(jitterMax + 1)),
		}
		for y := 0; y < c.Height; y++ {
			c.Map(y, func(v ansii.RGB) ansii.RGB { return v.Blend(tint, jitterAlpha) })
		}
	}
}

func (s *Scene) drawGrid(c *ansii.Canvas, snap pong.Snapshot) {
	point := glyph(ansii.Blocks.GridPoint)
	for x := 0.0; x < snap.Width; x += gridSpacing {
		for y := 0.0; y < snap.Height; y += gridSpacing {
			cx, cy := s.cell(x, y)
			c.Set(cx, cy, point, gridGray)
		}
	}
}

func (s *Scene) drawPaddle(c *ansii.Canvas, p pong.PaddleState, fg ansii.RGB) {
	x, y := s.cell(p.Pos.X, p.Pos.Y)
	w, h := span(p.Width, s.sx), span(p.Height, s.sy)
	ansii.DrawBox(c, x, y, h, w, glyph(ansii.Blocks.Block), fg)

	// Pixelation: every other row of the paddle is drawn with a coarser glyph.
	shade := glyph(ansii.Blocks.Shade)
	for row := 1; row < h; row += 2 {
		for col := 0; col < w; col++ {
			c.Set(x+col, y+row, shade, fg)
		}
	}
}

func (s *Scene) drawBall(c *ansii.Canvas, frame pong.Frame) {
	ball := frame.Current.Ball

	if s.Effects.Trail {
		light := glyph(ansii.Blocks.Light)
		for i, p := range ball.Trail {
			cx, cy := s.cell(p.X, p.Y)
			c.Set(cx, cy, light, black.Blend(white, TrailAlpha(i, len(ball.Trail))))
		}
	}

	if s.Effects.Blur {
		prev := frame.Previous.Ball.Pos
		cx, cy := s.cell(prev.X, prev.Y)
		c.Set(cx, cy, glyph(ansii.Blocks.Light), black.Blend(yellow, blurAlpha))
	}

	cx, cy := s.cell(ball.Pos.X, ball.Pos.Y)
	c.Set(cx, cy, glyph(ansii.Blocks.Ball), yellow)
}

func (s *Scene) drawUI(c *ansii.Canvas, snap pong.Snapshot) {
	dash := glyph(ansii.Blocks.Dash)
	mid, _ := s.cell(snap.Width/2, 0)
	for row := 0; row < c.Height; row++ {
		if math.Mod((float64(row)+0.5)/s.sy, dashPeriod) < dashLength {
			c.Set(mid, row, dash, white)
		}
	}

	left := strconv.Itoa(snap.Scores.Left)
	right := strconv.Itoa(snap.Scores.Right)
	lx, ty := s.cell(snap.Width/4, scoreTop)
	rx, _ := s.cell(3*snap.Width/4, scoreTop)
	c.Text(lx-len(left)/2, ty, left, green)
	c.Text(rx-len(right)/2, ty, right, blue)
}

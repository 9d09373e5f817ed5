package desktop

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"retropong/internal/pong"
)

var (
	black    = color.NRGBA{A: 255}
	white    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	green    = color.NRGBA{G: 255, A: 255}
	blue     = color.NRGBA{G: 100, B: 255, A: 255}
	yellow   = color.NRGBA{R: 255, G: 255, A: 255}
	gridGray = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

const (
	gridSpacing   = 32
	pixelRow      = 4
	dashPeriod    = 20
	dashLength    = 10
	dashWidth     = 4
	scoreTop      = 50
	scoreScale    = 3
	debugGlyphW   = 6
	blurAlpha     = 100
	trailMaxAlpha = 0.3
	scanlineAlpha = 30
	jitterAlpha   = 10
	jitterMax     = 50
)

// trailColor is white faded in from the oldest point to the newest.
func trailColor(i, n int) color.NRGBA {
	c := white
	c.A = uint8(255 * float64(i+1) / float64(n) * trailMaxAlpha)
	return c
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func (g *Game) draw(screen *ebiten.Image, frame pong.Frame) {
	cur := frame.Current
	fx := g.cfg.Effects
	w, h := float32(cur.Width), float32(cur.Height)

	screen.Fill(black)
	if fx.Grid {
		for x := float32(0); x < w; x += gridSpacing {
			vector.StrokeLine(screen, x, 0, x, h, 1, gridGray, false)
		}
		for y := float32(0); y < h; y += gridSpacing {
			vector.StrokeLine(screen, 0, y, w, y, 1, gridGray, false)
		}
	}

	drawPaddle(screen, cur.Left, green)
	drawPaddle(screen, cur.Right, blue)

	ball := cur.Ball
	size := float32(ball.Radius * 2)
	if fx.Trail {
		for i, p := range ball.Trail {
			vector.DrawFilledRect(screen, float32(p.X)-size/2, float32(p.Y)-size/2, size, size, trailColor(i, len(ball.Trail)), false)
		}
	}
	bx, by := float32(ball.Pos.X), float32(ball.Pos.Y)
	vector.DrawFilledRect(screen, bx-size/2, by-size/2, size, size, yellow, false)
	vector.DrawFilledCircle(screen, bx, by, size/2, yellow, false)
	if fx.Blur {
		prev := frame.Previous.Ball.Pos
		vector.DrawFilledRect(screen, float32(prev.X)-size/2, float32(prev.Y)-size/2, size, size, withAlpha(yellow, blurAlpha), false)
	}

	g.drawScore(screen, cur.Scores.Left, cur.Width/4, green)
	g.drawScore(screen, cur.Scores.Right, 3*cur.Width/4, blue)
	for y := float32(0); y < h; y += dashPeriod {
		vector.DrawFilledRect(screen, w/2-dashWidth/2, y, dashWidth, dashLength, white, false)
	}

	for _, tint := range g.overlays() {
		vector.DrawFilledRect(screen, 0, 0, w, h, tint, false)
	}
}

// overlays returns the full-frame tints laid over the finished picture. The
// scanline layer is solid black, so it dims the whole frame evenly.
func (g *Game) overlays() []color.NRGBA {
	fx := g.cfg.Effects
	var tints []color.NRGBA
	if fx.Scanlines {
		tints = append(tints, withAlpha(black, scanlineAlpha))
	}
	if fx.Jitter && g.jitter != nil {
		tints = append(tints, color.NRGBA{
			R: uint8(g.jitter.Intn(jitterMax + 1)),
			G: uint8(g.jitter.Intn(jitterMax + 1)),
			B: uint8(g.jitter.Intn(jitterMax + 1)),
			A: jitterAlpha,
		})
	}
	return tints
}

func drawPaddle(screen *ebiten.Image, p pong.PaddleState, c color.NRGBA) {
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	pw, ph := float32(p.Width), float32(p.Height)
	vector.DrawFilledRect(screen, x, y, pw, ph, c, false)
	for i := float32(0); i < ph; i += pixelRow {
		vector.StrokeLine(screen, x, y+i, x+pw, y+i, 1, black, false)
	}
}

// drawScore prints the score with the debug font, scaled up and tinted.
func (g *Game) drawScore(screen *ebiten.Image, score int, centerX float64, c color.NRGBA) {
	text := strconv.Itoa(score)
	if g.score == nil {
		g.score = ebiten.NewImage(debugGlyphW*8, 16)
	}
	g.score.Clear()
	ebitenutil.DebugPrint(g.score, text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scoreScale, scoreScale)
	op.GeoM.Translate(centerX-float64(len(text)*debugGlyphW*scoreScale)/2, scoreTop)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(g.score, op)
}

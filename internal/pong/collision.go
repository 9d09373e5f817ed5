package pong

import "math"

// Spin returns the vertical speed given to a ball struck at hitFraction of
// the paddle height (0 top, 1 bottom). A center hit returns it flat.
func Spin(hitFraction, baseSpeed float64) float64 {
	return (hitFraction - 0.5) * baseSpeed
}

func hitFraction(b *Ball, p *Paddle) float64 {
	return (b.Pos.Y - p.Pos.Y) / p.Height
}

// bounceLeft sends the ball back to the right off the left paddle.
func bounceLeft(b *Ball, p *Paddle, baseSpeed float64) bool {
	if b.Vel.X >= 0 || !b.Rect().Intersects(p.Rect()) {
		return false
	}
	b.Vel.X = reflect(b.Vel.X, 1, b.Speed)
	b.Pos.X = p.Rect().Right() + b.Radius
	b.Vel.Y = Spin(hitFraction(b, p), baseSpeed)
	return true
}

func bounceRight(b *Ball, p *Paddle, baseSpeed float64) bool {
	if b.Vel.X <= 0 || !b.Rect().Intersects(p.Rect()) {
		return false
	}
	b.Vel.X = reflect(b.Vel.X, -1, b.Speed)
	b.Pos.X = p.Rect().Left() - b.Radius
	b.Vel.Y = Spin(hitFraction(b, p), baseSpeed)
	return true
}

// reflect flips vx so that its sign matches dir. A zero magnitude is replaced
// by speed so the ball can never stall on a paddle.
func reflect(vx, dir, speed float64) float64 {
	mag := math.Abs(vx)
	if mag == 0 {
		mag = speed
	}
	return dir * mag
}

// resolve runs the paddle checks and then the scoring check for one step.
func resolve(b *Ball, left, right *Paddle, baseSpeed, fieldWidth float64, events []Event) []Event {
	if bounceLeft(b, left, baseSpeed) {
		events = append(events, Event{Kind: PaddleBounce, Side: Left})
	}
	if bounceRight(b, right, baseSpeed) {
		events = append(events, Event{Kind: PaddleBounce, Side: Right})
	}

	switch {
	case b.Pos.X < 0:
		b.Reset()
		events = append(events, Event{Kind: Score, Side: Right})
	case b.Pos.X > fieldWidth:
		b.Reset()
		events = append(events, Event{Kind: Score, Side: Left})
	}
	return events
}

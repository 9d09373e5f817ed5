package pong

type Ball struct {
	Pos    Vector
	Vel    Vector
	Radius float64
	// Speed is the serve speed. |Vel.X| always equals it.
	Speed       float64
	TrailLength int
	Trail       []Vector

	fieldWidth  float64
	fieldHeight float64
	rng         Source
}

func NewBall(fieldWidth, fieldHeight, size, speed float64, trailLength int, rng Source) *Ball {
	b := &Ball{
		Radius:      size / 2,
		Speed:       speed,
		TrailLength: trailLength,
		Trail:       make([]Vector, 0, trailLength+1),
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
		rng:         rng,
	}
	b.Reset()
	return b
}

// Reset serves from the center of the field in a random direction.
func (b *Ball) Reset() {
	b.Pos = Vector{X: b.fieldWidth / 2, Y: b.fieldHeight / 2}

	b.Vel.X = b.Speed
	if b.rng.Intn(2) == 0 {
		b.Vel.X = -b.Speed
	}
	b.Vel.Y = (b.rng.Float64()*2 - 1) * b.Speed / 2

	b.Trail = b.Trail[:0]
}

// Step moves the ball by one fixed step and reflects it off the top and
// bottom walls. ok is false when no wall was hit.
func (b *Ball) Step() (ev Event, ok bool) {
	if b.TrailLength > 0 {
		b.Trail = append(b.Trail, b.Pos)
		if len(b.Trail) > b.TrailLength {
			b.Trail = append(b.Trail[:0], b.Trail[1:]...)
		}
	}

	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y

	// The ball is not pushed back inside, so one that stays in the wall band
	// flips vy again on every step until it leaves.
	if b.Pos.Y <= b.Radius || b.Pos.Y >= b.fieldHeight-b.Radius {
		b.Vel.Y = -b.Vel.Y
		return Event{Kind: WallBounce}, true
	}
	return Event{}, false
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.Pos.X - b.Radius, Y: b.Pos.Y - b.Radius, W: 2 * b.Radius, H: 2 * b.Radius}
}

func (b *Ball) state() BallState {
	trail := make([]Vector, len(b.Trail))
	copy(trail, b.Trail)
	return BallState{Pos: b.Pos, Vel: b.Vel, Radius: b.Radius, Trail: trail}
}

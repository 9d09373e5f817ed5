package pong

type Paddle struct {
	Pos         Vector
	Width       float64
	Height      float64
	Speed       float64
	FieldHeight float64
}

func NewPaddle(x, fieldHeight, width, height, speed float64) *Paddle {
	return &Paddle{
		Pos:         Vector{X: x, Y: fieldHeight/2 - height/2},
		Width:       width,
		Height:      height,
		Speed:       speed,
		FieldHeight: fieldHeight,
	}
}

func (p *Paddle) MoveUp() {
	p.Pos.Y = max(p.Pos.Y-p.Speed, 0)
}

func (p *Paddle) MoveDown() {
	p.Pos.Y = min(p.Pos.Y+p.Speed, p.maxY())
}

func (p *Paddle) maxY() float64 {
	return p.FieldHeight - p.Height
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) state() PaddleState {
	return PaddleState{Pos: p.Pos, Width: p.Width, Height: p.Height}
}

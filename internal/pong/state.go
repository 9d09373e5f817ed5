package pong

type Vector struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box with its origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports strict overlap. Boxes that only share an edge do not
// intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

type EventKind int

const (
	WallBounce EventKind = iota + 1
	PaddleBounce
	Score
)

func (k EventKind) String() string {
	switch k {
	case WallBounce:
		return "wall_bounce"
	case PaddleBounce:
		return "paddle_bounce"
	case Score:
		return "score"
	}
	return "none"
}

// Event is reported by a simulation step. Side is the paddle struck for
// PaddleBounce and the scoring side for Score.
type Event struct {
	Kind EventKind
	Side Side
}

type Scores struct {
	Left  int
	Right int
}

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "terminated"
}

// Input is the press state of every control for the current frame.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
	Reset     bool
	Quit      bool
}

type PaddleState struct {
	Pos    Vector
	Width  float64
	Height float64
}

type BallState struct {
	Pos    Vector
	Vel    Vector
	Radius float64
	Trail  []Vector
}

// Snapshot is a value copy of everything a renderer draws.
type Snapshot struct {
	Width  float64
	Height float64
	Left   PaddleState
	Right  PaddleState
	Ball   BallState
	Scores Scores
}

// Frame pairs the current snapshot with the one rendered before it so
// renderers can draw motion effects without keeping state of their own.
type Frame struct {
	Current  Snapshot
	Previous Snapshot
}

type Renderer interface {
	Render(frame Frame)
}

type InputSource interface {
	Poll() Input
}

type Audio interface {
	Trigger(ev Event)
}

// Source is the random source used for serves. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

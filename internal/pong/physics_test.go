package pong

import (
	"math"
	"testing"
)

func TestPaddleClamping(t *testing.T) {
	p := NewPaddle(30, 600, 15, 80, 6)

	for i := 0; i < 100; i++ {
		p.MoveUp()
		if p.Pos.Y < 0 || p.Pos.Y > 520 {
			t.Fatalf("paddle left bounds after MoveUp: %v", p.Pos.Y)
		}
	}
	if p.Pos.Y != 0 {
		t.Errorf("expected paddle pinned at 0, got %v", p.Pos.Y)
	}

	for i := 0; i < 100; i++ {
		p.MoveDown()
		if p.Pos.Y < 0 || p.Pos.Y > 520 {
			t.Fatalf("paddle left bounds after MoveDown: %v", p.Pos.Y)
		}
	}
	if p.Pos.Y != 520 {
		t.Errorf("expected paddle pinned at 520, got %v", p.Pos.Y)
	}
}

func TestPaddleClampsPartialMove(t *testing.T) {
	p := NewPaddle(30, 600, 15, 80, 6)

	p.Pos.Y = 3
	p.MoveUp()
	if p.Pos.Y != 0 {
		t.Errorf("expected clamp to 0, got %v", p.Pos.Y)
	}

	p.Pos.Y = 517
	p.MoveDown()
	if p.Pos.Y != 520 {
		t.Errorf("expected clamp to 520, got %v", p.Pos.Y)
	}
}

func TestBallResetWithinServeBounds(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		b := NewBall(800, 600, 12, 5, 5, NewSource(seed))
		for i := 0; i < 10; i++ {
			b.Reset()
			if b.Pos != (Vector{X: 400, Y: 300}) {
				t.Fatalf("seed %d: expected center, got %+v", seed, b.Pos)
			}
			if math.Abs(b.Vel.X) != 5 {
				t.Fatalf("seed %d: expected |vx| == 5, got %v", seed, b.Vel.X)
			}
			if b.Vel.Y < -2.5 || b.Vel.Y > 2.5 {
				t.Fatalf("seed %d: vy %v outside [-2.5, 2.5]", seed, b.Vel.Y)
			}
		}
	}
}

func TestBallResetServesBothWays(t *testing.T) {
	b := NewBall(800, 600, 12, 5, 5, NewSource(7))
	var left, right int
	for i := 0; i < 200; i++ {
		b.Reset()
		if b.Vel.X < 0 {
			left++
		} else {
			right++
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("expected serves in both directions, got left=%d right=%d", left, right)
	}
}

func TestBallTrailIsBounded(t *testing.T) {
	b := NewBall(800, 600, 12, 5, 5, flatServe())

	var want []Vector
	for i := 0; i < 12; i++ {
		want = append(want, b.Pos)
		b.Step()
	}
	want = want[len(want)-5:]

	if len(b.Trail) != 5 {
		t.Fatalf("expected 5 trail points, got %d", len(b.Trail))
	}
	for i := range want {
		if b.Trail[i] != want[i] {
			t.Errorf("trail[%d] = %+v, want %+v", i, b.Trail[i], want[i])
		}
	}
	if b.Trail[4].X != b.Pos.X-5 {
		t.Errorf("most recent trail point should be the last position, got %+v", b.Trail[4])
	}
}

func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name    string
		pos     Vector
		vel     Vector
		bounce  bool
		wantVel float64
	}{
		{name: "top wall", pos: Vector{X: 400, Y: 8}, vel: Vector{X: 5, Y: -2}, bounce: true, wantVel: 2},
		{name: "exactly at radius", pos: Vector{X: 400, Y: 7}, vel: Vector{X: 5, Y: -1}, bounce: true, wantVel: 1},
		{name: "bottom wall", pos: Vector{X: 400, Y: 592}, vel: Vector{X: 5, Y: 2}, bounce: true, wantVel: -2},
		{name: "open field", pos: Vector{X: 400, Y: 300}, vel: Vector{X: 5, Y: 2}, bounce: false, wantVel: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(800, 600, 12, 5, 5, flatServe())
			b.Pos, b.Vel = tt.pos, tt.vel

			ev, ok := b.Step()
			if ok != tt.bounce {
				t.Fatalf("expected bounce=%v, got %v", tt.bounce, ok)
			}
			if ok && ev.Kind != WallBounce {
				t.Errorf("expected wall bounce event, got %v", ev.Kind)
			}
			if b.Vel.Y != tt.wantVel {
				t.Errorf("expected vy %v, got %v", tt.wantVel, b.Vel.Y)
			}
			if b.Vel.X != tt.vel.X {
				t.Errorf("wall bounce must not touch vx, got %v", b.Vel.X)
			}
		})
	}
}

func TestBallInsideWallBandFlipsEveryStep(t *testing.T) {
	b := NewBall(800, 600, 12, 5, 0, flatServe())
	b.Pos, b.Vel = Vector{X: 400, Y: 4}, Vector{X: 5, Y: -0.5}

	wantVY := []float64{0.5, -0.5, 0.5, -0.5}
	for i, want := range wantVY {
		ev, ok := b.Step()
		if !ok || ev.Kind != WallBounce {
			t.Fatalf("step %d: expected a wall bounce, got %v %v", i, ev.Kind, ok)
		}
		if b.Vel.Y != want {
			t.Errorf("step %d: expected vy %v, got %v", i, want, b.Vel.Y)
		}
		if b.Pos.Y > b.Radius {
			t.Errorf("step %d: ball should stay in the wall band, y=%v", i, b.Pos.Y)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"apart", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSpin(t *testing.T) {
	tests := []struct {
		hit  float64
		want float64
	}{
		{0, -2.5},
		{0.25, -1.25},
		{0.5, 0},
		{1, 2.5},
	}
	for _, tt := range tests {
		if got := Spin(tt.hit, 5); got != tt.want {
			t.Errorf("Spin(%v) = %v, want %v", tt.hit, got, tt.want)
		}
	}
}

func TestPaddleBounce(t *testing.T) {
	tests := []struct {
		name     string
		side     Side
		ballY    float64
		wantVY   float64
		wantX    float64
		incoming float64
	}{
		{name: "left center", side: Left, ballY: 300, wantVY: 0, wantX: 51, incoming: -5},
		{name: "left top edge", side: Left, ballY: 260, wantVY: -2.5, wantX: 51, incoming: -5},
		{name: "left bottom edge", side: Left, ballY: 340, wantVY: 2.5, wantX: 51, incoming: -5},
		{name: "right center", side: Right, ballY: 300, wantVY: 0, wantX: 749, incoming: 5},
		{name: "right quarter", side: Right, ballY: 280, wantVY: -1.25, wantX: 749, incoming: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := NewPaddle(30, 600, 15, 80, 6)
			right := NewPaddle(755, 600, 15, 80, 6)
			b := NewBall(800, 600, 12, 5, 5, flatServe())
			b.Vel = Vector{X: tt.incoming, Y: 1}
			if tt.side == Left {
				b.Pos = Vector{X: 42, Y: tt.ballY}
			} else {
				b.Pos = Vector{X: 758, Y: tt.ballY}
			}

			events := resolve(b, left, right, 5, 800, nil)

			if len(events) != 1 || events[0] != (Event{Kind: PaddleBounce, Side: tt.side}) {
				t.Fatalf("expected one bounce off %v, got %+v", tt.side, events)
			}
			if b.Vel.X != -tt.incoming {
				t.Errorf("expected vx %v, got %v", -tt.incoming, b.Vel.X)
			}
			if b.Pos.X != tt.wantX {
				t.Errorf("expected x %v, got %v", tt.wantX, b.Pos.X)
			}
			if b.Vel.Y != tt.wantVY {
				t.Errorf("expected vy %v, got %v", tt.wantVY, b.Vel.Y)
			}
		})
	}
}

func TestPaddleIgnoresBallMovingAway(t *testing.T) {
	left := NewPaddle(30, 600, 15, 80, 6)
	right := NewPaddle(755, 600, 15, 80, 6)
	b := NewBall(800, 600, 12, 5, 5, flatServe())
	b.Pos = Vector{X: 42, Y: 300}
	b.Vel = Vector{X: 5, Y: 1}

	if events := resolve(b, left, right, 5, 800, nil); len(events) != 0 {
		t.Errorf("expected no events, got %+v", events)
	}
	if b.Vel != (Vector{X: 5, Y: 1}) {
		t.Errorf("velocity changed: %+v", b.Vel)
	}
}

func TestReflectNeverStalls(t *testing.T) {
	if got := reflect(0, 1, 5); got != 5 {
		t.Errorf("expected zero vx to become 5, got %v", got)
	}
	if got := reflect(-5, 1, 5); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
	if got := reflect(5, -1, 5); got != -5 {
		t.Errorf("expected -5, got %v", got)
	}
}

func TestScoringResetsBall(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want Side
	}{
		{"past left edge", -1, Right},
		{"past right edge", 801, Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := NewPaddle(30, 600, 15, 80, 6)
			right := NewPaddle(755, 600, 15, 80, 6)
			b := NewBall(800, 600, 12, 5, 5, flatServe())
			b.Pos = Vector{X: tt.x, Y: 10}
			b.Trail = append(b.Trail, Vector{X: 1, Y: 1})

			events := resolve(b, left, right, 5, 800, nil)
			if len(events) != 1 || events[0] != (Event{Kind: Score, Side: tt.want}) {
				t.Fatalf("expected one score for %v, got %+v", tt.want, events)
			}
			if b.Pos != (Vector{X: 400, Y: 300}) || len(b.Trail) != 0 {
				t.Errorf("expected a fresh serve, got %+v trail %d", b.Pos, len(b.Trail))
			}
		})
	}
}

func TestBallOnEdgesDoesNotScore(t *testing.T) {
	left := NewPaddle(30, 600, 15, 80, 6)
	right := NewPaddle(755, 600, 15, 80, 6)
	for _, x := range []float64{0, 800} {
		b := NewBall(800, 600, 12, 5, 5, flatServe())
		b.Pos = Vector{X: x, Y: 10}
		if events := resolve(b, left, right, 5, 800, nil); len(events) != 0 {
			t.Errorf("x=%v: expected no score, got %+v", x, events)
		}
	}
}

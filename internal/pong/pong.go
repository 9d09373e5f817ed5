package pong

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"retropong/internal/config"
)

// Match owns both paddles, the ball and the score, and advances them in fixed
// steps.
type Match struct {
	id  uuid.UUID
	cfg config.Configuration
	log *slog.Logger

	Left   *Paddle
	Right  *Paddle
	Ball   *Ball
	scores Scores
	clock  *SimulationClock
	state  State

	prev Snapshot
}

type StepResult struct {
	Events []Event
}

type FrameResult struct {
	Steps  int
	Events []Event
	State  State
}

type Option func(*Match)

// WithSource replaces the seeded random source used for serves.
func WithSource(src Source) Option {
	return func(m *Match) { m.Ball.rng = src }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Match) { m.log = l }
}

// NewSource returns a seeded source. A zero seed is taken from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func NewMatch(cfg config.Configuration, opts ...Option) *Match {
	m := &Match{
		id:    uuid.New(),
		cfg:   cfg,
		log:   slog.Default(),
		clock: NewSimulationClock(cfg.FixedStep(), cfg.MaxStepsPerFrame),
		state: Running,
	}

	m.Left = NewPaddle(cfg.Paddle.Inset, cfg.Field.Height, cfg.Paddle.Width, cfg.Paddle.Height, cfg.Paddle.Speed)
	m.Right = NewPaddle(cfg.Field.Width-cfg.Paddle.Inset-cfg.Paddle.Width, cfg.Field.Height, cfg.Paddle.Width, cfg.Paddle.Height, cfg.Paddle.Speed)
	m.Ball = NewBall(cfg.Field.Width, cfg.Field.Height, cfg.Ball.Size, cfg.Ball.Speed, cfg.Ball.TrailLength, NewSource(cfg.Seed))

	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(slog.String("match", m.id.String()))

	// Serve again so an injected source decides the opening serve.
	m.Ball.Reset()
	m.prev = m.Snapshot()
	return m
}

func (m *Match) ID() uuid.UUID                { return m.id }
func (m *Match) State() State                 { return m.state }
func (m *Match) Scores() Scores               { return m.scores }
func (m *Match) Clock() *SimulationClock      { return m.clock }
func (m *Match) Config() config.Configuration { return m.cfg }

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Width:  m.cfg.Field.Width,
		Height: m.cfg.Field.Height,
		Left:   m.Left.state(),
		Right:  m.Right.state(),
		Ball:   m.Ball.state(),
		Scores: m.scores,
	}
}

// View is the frame to hand to a renderer.
func (m *Match) View() Frame {
	return Frame{Current: m.Snapshot(), Previous: m.prev}
}

// Step runs one fixed step: ball movement, then paddle collisions, then
// scoring.
func (m *Match) Step() StepResult {
	var events []Event
	if ev, ok := m.Ball.Step(); ok {
		events = append(events, ev)
	}

	events = resolve(m.Ball, m.Left, m.Right, m.cfg.Ball.Speed, m.cfg.Field.Width, events)

	for _, ev := range events {
		if ev.Kind != Score {
			continue
		}
		if ev.Side == Left {
			m.scores.Left++
		} else {
			m.scores.Right++
		}
		m.log.Debug("point scored",
			slog.String("side", ev.Side.String()),
			slog.Int("left", m.scores.Left),
			slog.Int("right", m.scores.Right))
	}
	return StepResult{Events: events}
}

// Frame applies one frame of input and runs as many fixed steps as dt allows.
func (m *Match) Frame(dt float64, in Input) FrameResult {
	if m.state == Terminated {
		return FrameResult{State: m.state}
	}
	m.prev = m.Snapshot()

	if in.Quit {
		m.state = Terminated
		m.log.Info("match terminated",
			slog.Int("left", m.scores.Left),
			slog.Int("right", m.scores.Right))
		return FrameResult{State: m.state}
	}
	if in.Reset {
		m.Ball.Reset()
		m.log.Debug("ball reset")
	}

	if in.LeftUp {
		m.Left.MoveUp()
	}
	if in.LeftDown {
		m.Left.MoveDown()
	}
	if in.RightUp {
		m.Right.MoveUp()
	}
	if in.RightDown {
		m.Right.MoveDown()
	}

	var events []Event
	dropped := m.clock.Dropped()
	steps := m.clock.Advance(dt, func() {
		events = append(events, m.Step().Events...)
	})
	if d := m.clock.Dropped() - dropped; d > 0 {
		m.log.Debug("dropped simulation backlog", slog.Float64("seconds", d), slog.Int("steps", steps))
	}

	return FrameResult{Steps: steps, Events: events, State: m.state}
}

type Collaborators struct {
	Input    InputSource
	Renderer Renderer
	// Audio may be nil.
	Audio   Audio
	Limiter *Limiter
}

// Run drives the frame loop until the match is quit or ctx is done.
func (m *Match) Run(ctx context.Context, c Collaborators) error {
	limiter := c.Limiter
	if limiter == nil {
		limiter = NewLimiter(m.cfg.FrameInterval())
	}

	m.log.Info("match started",
		slog.Float64("width", m.cfg.Field.Width),
		slog.Float64("height", m.cfg.Field.Height),
		slog.Int("fps", m.cfg.FPS))

	for m.state == Running {
		if err := ctx.Err(); err != nil {
			m.log.Info("match interrupted", slog.Any("reason", err))
			return err
		}

		dt := limiter.Wait()
		res := m.Frame(dt, c.Input.Poll())
		if res.State == Terminated {
			break
		}

		if c.Audio != nil {
			for _, ev := range res.Events {
				c.Audio.Trigger(ev)
			}
		}
		c.Renderer.Render(m.View())
	}
	return nil
}

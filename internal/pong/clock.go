package pong

import "math"

// SimulationClock turns variable frame deltas into a whole number of fixed
// steps.
type SimulationClock struct {
	FixedStep float64
	// MaxSteps caps the steps run by one Advance. 0 means no cap.
	MaxSteps int

	accumulator float64
	dropped     float64
}

func NewSimulationClock(fixedStep float64, maxSteps int) *SimulationClock {
	return &SimulationClock{FixedStep: fixedStep, MaxSteps: maxSteps}
}

// Advance accumulates dt seconds and calls step once per whole fixed step
// available. It returns the number of steps run.
func (c *SimulationClock) Advance(dt float64, step func()) int {
	if dt > 0 && !math.IsInf(dt, 1) {
		c.accumulator += dt
	}

	n := 0
	for c.accumulator >= c.FixedStep {
		if c.MaxSteps > 0 && n == c.MaxSteps {
			// Spiral of death guard: keep the partial step, drop the backlog.
			rem := math.Mod(c.accumulator, c.FixedStep)
			c.dropped += c.accumulator - rem
			c.accumulator = rem
			break
		}
		step()
		c.accumulator -= c.FixedStep
		n++
	}
	return n
}

// Pending is the unconsumed time in seconds, always below one step after
// Advance returns.
func (c *SimulationClock) Pending() float64 {
	return c.accumulator
}

// Alpha is the fraction of a step pending, in [0, 1).
func (c *SimulationClock) Alpha() float64 {
	return c.accumulator / c.FixedStep
}

// Dropped is the total time discarded by the step cap.
func (c *SimulationClock) Dropped() float64 {
	return c.dropped
}

func (c *SimulationClock) Reset() {
	c.accumulator = 0
	c.dropped = 0
}

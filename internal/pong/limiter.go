package pong

import "time"

// Limiter caps the frame rate and measures the time between frames.
type Limiter struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewLimiter(interval time.Duration) *Limiter {
	return &Limiter{interval: interval, now: time.Now, sleep: time.Sleep}
}

// Wait blocks until a full interval has passed since the previous call and
// returns the elapsed seconds. The first call returns one interval.
func (l *Limiter) Wait() float64 {
	if l.last.IsZero() {
		l.last = l.now()
		return l.interval.Seconds()
	}

	if spare := l.interval - l.now().Sub(l.last); spare > 0 {
		l.sleep(spare)
	}

	now := l.now()
	dt := now.Sub(l.last)
	l.last = now
	return dt.Seconds()
}

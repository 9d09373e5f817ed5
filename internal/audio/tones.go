package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	BounceDuration = 100 * time.Millisecond
	ScoreDuration  = 300 * time.Millisecond

	// Peak amplitude of every tone, 4096 out of a 16-bit range.
	amplitude = 4096.0 / 32768.0
)

// sweep is a sine oscillator whose frequency and gain follow the progress
// through the tone, from 0 at the first sample to 1 past the last.
type sweep struct {
	rate     beep.SampleRate
	total    int
	position int
	phase    float64

	freq func(progress float64) float64
	gain func(progress float64) float64
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)

		val := amplitude * s.gain(progress) * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq(progress) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// BounceTone is a falling 1000Hz to 200Hz blip that fades out as it drops.
func BounceTone(rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:  rate,
		total: rate.N(BounceDuration),
		freq:  func(p float64) float64 { return 800*(1-p) + 200 },
		gain:  func(p float64) float64 { return 1 - p },
	}
}

// ScoreTone rises from 400Hz to 800Hz at constant volume.
func ScoreTone(rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:  rate,
		total: rate.N(ScoreDuration),
		freq:  func(p float64) float64 { return 400 + p*400 },
		gain:  func(float64) float64 { return 1 },
	}
}

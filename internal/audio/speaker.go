package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"retropong/internal/config"
	"retropong/internal/pong"
)

// Speaker plays event tones on the system audio device. Triggers are fire
// and forget; overlapping tones are mixed by the speaker.
type Speaker struct {
	mu     sync.Mutex
	bank   *Bank
	volume float64

	initialized bool
	init        func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
	close       func()
}

func NewSpeaker(cfg config.Audio) *Speaker {
	return &Speaker{
		bank:   NewBank(beep.SampleRate(cfg.SampleRate)),
		volume: cfg.Volume,
		init:   speaker.Init,
		play:   speaker.Play,
		close:  speaker.Close,
	}
}

// Initialize opens the output device with a 100ms buffer.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	rate := s.bank.Format().SampleRate
	if err := s.init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *Speaker) Trigger(ev pong.Event) {
	sound, ok := SoundFor(ev)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	slog.Debug("playing tone", slog.String("event", ev.Kind.String()))
	s.play(withVolume(s.bank.Streamer(sound), s.volume))
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.close()
	s.initialized = false
}

// withVolume scales a linear gain onto beep's log2 volume; zero is silent.
func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}

package desktop

import (
	"log/slog"

	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"retropong/internal/audio"
	"retropong/internal/pong"
)

// Sounds plays the tone bank through ebiten's audio context. Each tone has
// one player that is rewound on every trigger.
type Sounds struct {
	players map[audio.Sound]*eaudio.Player
}

func NewSounds(ctx *eaudio.Context, volume float64) *Sounds {
	bank := audio.NewBank(beep.SampleRate(ctx.SampleRate()))
	s := &Sounds{players: make(map[audio.Sound]*eaudio.Player)}

	for _, sound := range []audio.Sound{audio.SoundBounce, audio.SoundScore} {
		p := ctx.NewPlayerF32FromBytes(bank.PCM(sound))
		p.SetVolume(volume)
		s.players[sound] = p
	}
	return s
}

func (s *Sounds) Trigger(ev pong.Event) {
	sound, ok := audio.SoundFor(ev)
	if !ok {
		return
	}
	p := s.players[sound]
	if err := p.Rewind(); err != nil {
		slog.Debug("failed to rewind player", slog.Any("error", err))
		return
	}
	p.Play()
}

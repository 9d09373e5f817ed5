package audio

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep"

	"retropong/internal/config"
	"retropong/internal/pong"
)

const rate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
		if len(out) > int(rate)*10 {
			t.Fatal("tone never ended")
		}
	}
}

func TestToneLengths(t *testing.T) {
	tests := []struct {
		name string
		tone func(beep.SampleRate) beep.Streamer
		want int
	}{
		{"bounce", BounceTone, 4410},
		{"score", ScoreTone, 13230},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(drain(t, tt.tone(rate))); got != tt.want {
				t.Errorf("got %d samples, want %d", got, tt.want)
			}
		})
	}
}

func TestTonesStayWithinAmplitude(t *testing.T) {
	samples := append(drain(t, BounceTone(rate)), drain(t, ScoreTone(rate))...)
	for _, s := range samples {
		if math.Abs(s[0]) > amplitude+1e-9 || s[0] != s[1] {
			t.Fatalf("sample out of range or unbalanced: %v", s)
		}
	}
}

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = max(p, math.Abs(s[0]))
	}
	return p
}

func TestBounceToneDecays(t *testing.T) {
	samples := drain(t, BounceTone(rate))
	quarter := len(samples) / 4

	first, last := peak(samples[:quarter]), peak(samples[3*quarter:])
	if last >= first/2 {
		t.Errorf("expected the tail to be much quieter: first %v, last %v", first, last)
	}
}

func TestScoreToneHoldsVolume(t *testing.T) {
	samples := drain(t, ScoreTone(rate))
	quarter := len(samples) / 4

	first, last := peak(samples[:quarter]), peak(samples[3*quarter:])
	if math.Abs(first-last) > amplitude*0.05 {
		t.Errorf("expected constant volume: first %v, last %v", first, last)
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		ev   pong.Event
		want Sound
		ok   bool
	}{
		{pong.Event{Kind: pong.WallBounce}, SoundBounce, true},
		{pong.Event{Kind: pong.PaddleBounce, Side: pong.Right}, SoundBounce, true},
		{pong.Event{Kind: pong.Score, Side: pong.Left}, SoundScore, true},
		{pong.Event{}, 0, false},
	}
	for _, tt := range tests {
		got, ok := SoundFor(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SoundFor(%v) = %v, %v; want %v, %v", tt.ev.Kind, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBankReplays(t *testing.T) {
	b := NewBank(rate)

	if got := b.Len(SoundBounce); got != 4410 {
		t.Errorf("bounce length %d, want 4410", got)
	}
	first := drain(t, b.Streamer(SoundScore))
	second := drain(t, b.Streamer(SoundScore))
	if len(first) != 13230 || len(second) != len(first) {
		t.Fatalf("replays differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("replays differ at sample %d", i)
		}
	}
}

func TestPCM(t *testing.T) {
	b := NewBank(rate)
	pcm := b.PCM(SoundBounce)

	if len(pcm) != 4410*bytesPerFrame {
		t.Fatalf("got %d bytes, want %d", len(pcm), 4410*bytesPerFrame)
	}

	samples := drain(t, b.Streamer(SoundBounce))
	for _, i := range []int{0, 1, 100, 4409} {
		l := math.Float32frombits(binary.LittleEndian.Uint32(pcm[i*8:]))
		r := math.Float32frombits(binary.LittleEndian.Uint32(pcm[i*8+4:]))
		if l != float32(samples[i][0]) || r != float32(samples[i][1]) {
			t.Errorf("frame %d = %v,%v; want %v", i, l, r, samples[i])
		}
	}
}

func TestEncodeF32StopsAtLimit(t *testing.T) {
	pcm := EncodeF32(ScoreTone(rate), 1000)
	if len(pcm) != 1000*bytesPerFrame {
		t.Errorf("got %d bytes, want %d", len(pcm), 1000*bytesPerFrame)
	}
}

func fakeSpeaker(initErr error) (*Speaker, *[]beep.Streamer) {
	var played []beep.Streamer
	s := NewSpeaker(config.Audio{Enabled: true, SampleRate: int(rate), Volume: 0.5})
	s.init = func(beep.SampleRate, int) error { return initErr }
	s.play = func(st ...beep.Streamer) { played = append(played, st...) }
	s.close = func() {}
	return s, &played
}

func TestSpeakerTrigger(t *testing.T) {
	s, played := fakeSpeaker(nil)

	s.Trigger(pong.Event{Kind: pong.WallBounce})
	if len(*played) != 0 {
		t.Fatal("nothing should play before Initialize")
	}

	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	s.Trigger(pong.Event{Kind: pong.PaddleBounce, Side: pong.Left})
	s.Trigger(pong.Event{Kind: pong.Score, Side: pong.Right})
	s.Trigger(pong.Event{})

	if len(*played) != 2 {
		t.Fatalf("expected 2 tones, got %d", len(*played))
	}
	if got := len(drain(t, (*played)[0])); got != 4410 {
		t.Errorf("first tone has %d samples, want bounce length", got)
	}
	if got := len(drain(t, (*played)[1])); got != 13230 {
		t.Errorf("second tone has %d samples, want score length", got)
	}

	s.Close()
	s.Trigger(pong.Event{Kind: pong.Score})
	if len(*played) != 2 {
		t.Error("nothing should play after Close")
	}
}

func TestSpeakerVolume(t *testing.T) {
	s, played := fakeSpeaker(nil)
	s.Initialize()
	s.Trigger(pong.Event{Kind: pong.Score})

	loud := peak(drain(t, ScoreTone(rate)))
	quiet := peak(drain(t, (*played)[0]))
	// The bank stores 16-bit samples.
	if math.Abs(quiet-loud*0.5) > 1e-4 {
		t.Errorf("expected half volume: %v vs %v", quiet, loud)
	}
}

func TestSpeakerInitFailure(t *testing.T) {
	boom := errors.New("no device")
	s, _ := fakeSpeaker(boom)

	if err := s.Initialize(); !errors.Is(err, boom) {
		t.Errorf("expected wrapped device error, got %v", err)
	}
}

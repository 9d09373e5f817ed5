package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"

	"retropong/internal/pong"
)

type Sound int

const (
	SoundBounce Sound = iota
	SoundScore
)

// SoundFor maps a simulation event to the tone it plays. Wall and paddle
// bounces share the bounce tone.
func SoundFor(ev pong.Event) (Sound, bool) {
	switch ev.Kind {
	case pong.WallBounce, pong.PaddleBounce:
		return SoundBounce, true
	case pong.Score:
		return SoundScore, true
	}
	return 0, false
}

// Bank holds every tone rendered once up front, so a trigger only has to
// replay a buffer.
type Bank struct {
	format beep.Format
	tones  map[Sound]*beep.Buffer
}

func NewBank(rate beep.SampleRate) *Bank {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	b := &Bank{format: format, tones: make(map[Sound]*beep.Buffer)}

	for sound, gen := range map[Sound]func(beep.SampleRate) beep.Streamer{
		SoundBounce: BounceTone,
		SoundScore:  ScoreTone,
	} {
		buf := beep.NewBuffer(format)
		buf.Append(gen(rate))
		b.tones[sound] = buf
	}
	return b
}

func (b *Bank) Format() beep.Format {
	return b.format
}

// Len is the tone length in samples.
func (b *Bank) Len(s Sound) int {
	buf, ok := b.tones[s]
	if !ok {
		return 0
	}
	return buf.Len()
}

// Streamer returns a fresh playback of the tone.
func (b *Bank) Streamer(s Sound) beep.StreamSeeker {
	buf, ok := b.tones[s]
	if !ok {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// PCM renders the tone as interleaved little-endian float32 stereo.
func (b *Bank) PCM(s Sound) []byte {
	st := b.Streamer(s)
	if st == nil {
		return nil
	}
	return EncodeF32(st, b.Len(s))
}

const bytesPerFrame = 8

// EncodeF32 drains up to n samples of s into interleaved little-endian
// float32 stereo.
func EncodeF32(s beep.Streamer, n int) []byte {
	out := make([]byte, 0, n*bytesPerFrame)
	samples := make([][2]float64, 512)

	for n > 0 {
		chunk := samples[:min(len(samples), n)]
		got, ok := s.Stream(chunk)
		for _, frame := range chunk[:got] {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(frame[0])))
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(frame[1])))
		}
		n -= got
		if !ok {
			break
		}
	}
	return out
}

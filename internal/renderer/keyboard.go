package renderer

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// escDelay is how long a trailing ESC waits for the rest of its sequence.
const escDelay = 50 * time.Millisecond

// Keyboard feeds raw terminal bytes from r into a KeyState. An escape sequence
// split across reads is kept until the next read completes it.
type Keyboard struct {
	*KeyState
	// EscDelay bounds the wait for the rest of a split sequence. After it a
	// lone ESC counts as a quit.
	EscDelay time.Duration
	r        io.Reader

	pmu     sync.Mutex
	pending []byte
	gen     int
	timer   *time.Timer
}

func NewKeyboard(r io.Reader, hold time.Duration) *Keyboard {
	return &Keyboard{KeyState: NewKeyState(hold), EscDelay: escDelay, r: r}
}

// Listen reads until r fails. A closed input counts as a quit.
func (k *Keyboard) Listen() {
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := k.r.Read(buf)
			if n > 0 {
				k.feed(buf[:n])
			}
			if err != nil {
				if err != io.EOF {
					slog.Debug("error reading from stdin", slog.Any("error", err))
				}
				k.flush(-1)
				k.Press(Quit)
				return
			}
		}
	}()
}

func (k *Keyboard) feed(chunk []byte) {
	k.pmu.Lock()
	defer k.pmu.Unlock()

	if k.timer != nil {
		k.timer.Stop()
		k.timer = nil
	}
	k.gen++

	raw := append(k.pending, chunk...)
	actions, rest := DecodeInput(raw)
	k.Press(actions...)
	k.pending = append([]byte(nil), rest...)
	if len(k.pending) == 0 {
		return
	}
	gen := k.gen
	k.timer = time.AfterFunc(k.EscDelay, func() { k.flush(gen) })
}

// flush resolves the pending sequence if no read has arrived since gen.
// A gen of -1 always flushes.
func (k *Keyboard) flush(gen int) {
	k.pmu.Lock()
	defer k.pmu.Unlock()

	if gen >= 0 && gen != k.gen {
		return
	}
	if k.timer != nil {
		k.timer.Stop()
		k.timer = nil
	}
	k.Press(flushPartial(k.pending)...)
	k.pending = nil
}

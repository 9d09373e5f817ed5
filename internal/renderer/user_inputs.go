package renderer

import (
	"sync"
	"time"

	"retropong/internal/pong"
)

type UiAction int

const (
	Unknown UiAction = iota
	Quit
	Reset
	LeftUp
	LeftDown
	RightUp
	RightDown
)

const (
	esc   = 27
	ctrlC = 3
)

// ProcessInput decodes a complete chunk read from a raw terminal. Arrow keys
// arrive as ESC [ A / ESC [ B; a lone ESC is a quit.
func ProcessInput(raw []byte) []UiAction {
	actions, rest := DecodeInput(raw)
	return append(actions, flushPartial(rest)...)
}

// DecodeInput decodes raw and returns any escape sequence left unfinished at
// its end, so the caller can prepend it to the next read.
func DecodeInput(raw []byte) (actions []UiAction, rest []byte) {
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch {
		case b == esc && partialEscape(raw[i:]):
			return actions, raw[i:]
		case b == esc && (raw[i+1] == '[' || raw[i+1] == 'O'):
			switch raw[i+2] {
			case 'A':
				actions = append(actions, RightUp)
			case 'B':
				actions = append(actions, RightDown)
			default:
				actions = append(actions, Unknown)
			}
			i += 2
		case b == esc || b == ctrlC:
			actions = append(actions, Quit)
		default:
			actions = append(actions, runeAction(rune(b)))
		}
	}
	return actions, nil
}

// partialEscape reports whether seq is ESC, ESC [ or ESC O with nothing after.
func partialEscape(seq []byte) bool {
	switch len(seq) {
	case 1:
		return true
	case 2:
		return seq[1] == '[' || seq[1] == 'O'
	}
	return false
}

// flushPartial resolves a sequence that will not be continued: the ESC is a
// quit and the byte after it, if any, decodes on its own.
func flushPartial(rest []byte) []UiAction {
	if len(rest) == 0 {
		return nil
	}
	return append([]UiAction{Quit}, ProcessInput(rest[1:])...)
}

func runeAction(r rune) UiAction {
	// Convert to lower case
	if r >= 'A' && r <= 'Z' {
		r = r + 32
	}
	switch r {
	case 'w':
		return LeftUp
	case 's':
		return LeftDown
	case ' ':
		return Reset
	case 'q':
		return Quit
	}
	return Unknown
}

var opposite = map[UiAction]UiAction{
	LeftUp:    LeftDown,
	LeftDown:  LeftUp,
	RightUp:   RightDown,
	RightDown: RightUp,
}

// KeyState turns key events into press state. Terminals report repeats but
// never releases. A first press stays held for RepeatDelay, long enough for
// auto-repeat to start, and each repeat extends it by Hold.
// Reset is latched until the next Poll and Quit stays set once seen.
type KeyState struct {
	Hold        time.Duration
	RepeatDelay time.Duration
	now         func() time.Time

	mu    sync.Mutex
	until map[UiAction]time.Time
	reset bool
	quit  bool
}

func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{Hold: hold, now: time.Now, until: make(map[UiAction]time.Time)}
}

func (k *KeyState) Press(actions ...UiAction) {
	k.mu.Lock()
	defer k.mu.Unlock()

	at := k.now()
	for _, a := range actions {
		switch a {
		case Quit:
			k.quit = true
		case Reset:
			k.reset = true
		case LeftUp, LeftDown, RightUp, RightDown:
			// The latest direction wins over the opposite one.
			delete(k.until, opposite[a])
			until := at.Add(max(k.RepeatDelay, k.Hold))
			if k.held(a, at) {
				until = at.Add(k.Hold)
				if prev := k.until[a]; prev.After(until) {
					until = prev
				}
			}
			k.until[a] = until
		}
	}
}

func (k *KeyState) held(a UiAction, now time.Time) bool {
	until, ok := k.until[a]
	return ok && !now.After(until)
}

func (k *KeyState) Poll() pong.Input {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	in := pong.Input{
		LeftUp:    k.held(LeftUp, now),
		LeftDown:  k.held(LeftDown, now),
		RightUp:   k.held(RightUp, now),
		RightDown: k.held(RightDown, now),
		Reset:     k.reset,
		Quit:      k.quit,
	}
	k.reset = false
	return in
}

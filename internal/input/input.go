// Package input turns the raw terminal byte stream into per-frame held
// key state. Terminals deliver key repeats, not press/release events, so
// a key counts as held while repeats keep arriving within a short window.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press byte. Long enough to bridge terminal autorepeat gaps, short
// enough that releasing a key is felt promptly.
const keyHoldDuration = 100 * time.Millisecond

// Input represents the current frame's input state. Up and Down may both
// be held at once; callers decide what that means.
type Input struct {
	Quit    bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Music   bool // toggle playback
	Escape  bool
	Pressed []byte // raw bytes seen this frame
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	up     time.Time
	down   time.Time
	space  time.Time
	enter  time.Time
	music  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys and combinations survive across frames.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when r is closed.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets all held keys, e.g. when switching screens so a
// held key does not leak into the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream without blocking,
// parses arrow-key escape sequences, and reports which keys are currently
// held.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Down:    now.Sub(s.state.down) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Music:   now.Sub(s.state.music) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps for a pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case 'm', 'M':
		state.music = now
	case '\x1b':
		state.escape = now
	}
}

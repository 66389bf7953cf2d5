// Package input turns a raw terminal byte stream into an abstract stream of
// {action, pressed} events. Terminals report key presses but never releases,
// so a key counts as held for a short window after its last byte; release
// events are synthesized when the window lapses.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last press.
const keyHoldDuration = 150 * time.Millisecond

// Action is an abstract game input.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionShoot
	ActionPause
	ActionConfirm // start / restart
	ActionBack    // return to menu
	ActionQuit
	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionShoot:
		return "shoot"
	case ActionPause:
		return "pause"
	case ActionConfirm:
		return "confirm"
	case ActionBack:
		return "back"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one edge in the action stream.
type Event struct {
	Action  Action
	Pressed bool
}

// Stream reads raw bytes on a goroutine and synthesizes action events on
// each Poll.
type Stream struct {
	ch       chan byte
	lastSeen [actionCount]time.Time
	held     [actionCount]bool
	closed   bool
}

// StartStream spawns a goroutine that reads from r until EOF.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
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

// Poll drains all pending bytes and returns the action edges since the last
// call: a Pressed event when a key is first seen, a released event when its
// hold window lapses. Non-blocking.
func (s *Stream) Poll(now time.Time) []Event {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI escape sequences for arrow keys: ESC [ A/B/C/D.
		if b == '\x1b' {
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					s.lastSeen[ActionMoveUp] = now
				case 'B':
					s.lastSeen[ActionMoveDown] = now
				case 'C':
					s.lastSeen[ActionMoveRight] = now
				case 'D':
					s.lastSeen[ActionMoveLeft] = now
				}
				i += 2
				continue
			}
			// Bare escape.
			s.lastSeen[ActionBack] = now
			continue
		}

		switch b {
		case 'a', 'A':
			s.lastSeen[ActionMoveLeft] = now
		case 'd', 'D':
			s.lastSeen[ActionMoveRight] = now
		case 'w', 'W':
			s.lastSeen[ActionMoveUp] = now
		case 's', 'S':
			s.lastSeen[ActionMoveDown] = now
		case ' ':
			s.lastSeen[ActionShoot] = now
		case 'p', 'P':
			s.lastSeen[ActionPause] = now
		case '\r', '\n':
			s.lastSeen[ActionConfirm] = now
		case 'm', 'M':
			s.lastSeen[ActionBack] = now
		case 'q', 'Q', 3: // 3 = Ctrl-C
			s.lastSeen[ActionQuit] = now
		}
	}

	var events []Event
	for a := Action(0); a < actionCount; a++ {
		heldNow := !s.lastSeen[a].IsZero() && now.Sub(s.lastSeen[a]) < keyHoldDuration
		if heldNow != s.held[a] {
			s.held[a] = heldNow
			events = append(events, Event{Action: a, Pressed: heldNow})
		}
	}
	return events
}

// Closed reports whether the underlying reader reached EOF.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset clears all held state, e.g. when switching screens so a held key
// doesn't leak into the next state.
func (s *Stream) Reset() {
	for i := range s.lastSeen {
		s.lastSeen[i] = time.Time{}
		s.held[i] = false
	}
}

package machine

import (
	"fmt"

	"github.com/gdamore/tcell"

	"github.com/stenoproject/plojo/stroke"
)

// keyLayout maps a raw terminal key rune to the steno key letter it
// emulates, modeling a stenotype emulator layout laid over a standard
// keyboard (the arrangement a Georgi or a Plover-over-QWERTY setup
// uses): the home row plus its neighbors stand in for the steno key
// banks, read as a chord on release rather than key-by-key.
var keyLayout = map[rune]byte{
	'q': 'S', 'a': 'S', 'w': 'T', 's': 'K', 'e': 'P', 'd': 'W',
	'r': 'H', 'f': 'R',
	't': 'A', 'g': 'O',
	'y': 'E', 'h': 'U',
	'u': 'F', 'j': 'R',
	'i': 'P', 'k': 'B', 'o': 'L', 'l': 'G', 'p': 'T', ';': 'S',
	'1': '#', '2': '#', '3': '#', '4': '#', '5': '#',
	'6': '#', '7': '#', '8': '#', '9': '#', '0': '#',
}

// KeyboardMachine reads raw key-down/key-up events from the terminal and
// accumulates currently-held keys into a chord, emitting a Stroke when
// the last key of the chord is released (the same press-as-a-group,
// release-to-commit interaction a physical stenotype keyboard gives you,
// here emulated over ordinary keyboard hardware).
type KeyboardMachine struct {
	screen   tcell.Screen
	chord    map[rune]bool // every key seen since the chord started
	held     map[rune]bool // keys whose release has not yet been seen
	disabled bool
}

// NewKeyboard initializes and starts a tcell screen for raw key capture.
func NewKeyboard() (*KeyboardMachine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("machine: could not create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("machine: could not initialize terminal screen: %w", err)
	}
	return &KeyboardMachine{screen: screen, chord: make(map[rune]bool), held: make(map[rune]bool)}, nil
}

// Read blocks until a full chord has been pressed and released, then
// returns the canonicalized Stroke it spells out. It returns
// ErrDisconnected if the terminal screen is closed out from under it.
func (m *KeyboardMachine) Read() (stroke.Stroke, error) {
	for {
		ev := m.screen.PollEvent()
		if ev == nil {
			return "", ErrDisconnected
		}

		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if keyEv.Key() == tcell.KeyEscape {
			return "", ErrDisconnected
		}

		r := keyEv.Rune()
		letter, known := keyLayout[r]
		if !known {
			continue
		}

		if m.disabled {
			continue
		}

		if !m.held[r] {
			m.held[r] = true
			m.chord[r] = true
			continue
		}

		// second event for the same rune toggles it back up: a tty gives
		// no real key-up event, so a key is "released" the next time its
		// down-event recurs.
		delete(m.held, r)
		if len(m.held) > 0 {
			continue
		}

		if m.disabled {
			m.chord = make(map[rune]bool)
			continue
		}

		raw := make([]byte, 0, len(m.chord))
		for k := range m.chord {
			raw = append(raw, keyLayout[k])
		}
		m.chord = make(map[rune]bool)
		return stroke.New(string(raw)), nil
	}
}

// Disable toggles the keyboard driver's advisory mute: while muted, key
// events are still observed (so held-state stays consistent) but no chord
// is committed to a Stroke; the next call unmutes it.
func (m *KeyboardMachine) Disable() {
	m.disabled = !m.disabled
}

// Close tears down the terminal screen.
func (m *KeyboardMachine) Close() {
	m.screen.Fini()
}

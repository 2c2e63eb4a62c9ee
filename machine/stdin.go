package machine

import (
	"bufio"
	"io"

	"github.com/stenoproject/plojo/stroke"
)

// StdinMachine reads one raw stroke string per line from an io.Reader and
// canonicalizes it through stroke.New. It exists for manual testing of a
// dictionary without any steno hardware attached.
type StdinMachine struct {
	scanner  *bufio.Scanner
	disabled bool
}

// NewStdin wraps r (typically os.Stdin) in a StdinMachine.
func NewStdin(r io.Reader) *StdinMachine {
	return &StdinMachine{scanner: bufio.NewScanner(r)}
}

// Read blocks for the next line of input and returns its canonicalized
// stroke. It returns ErrDisconnected once the underlying reader is
// exhausted.
func (m *StdinMachine) Read() (stroke.Stroke, error) {
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrDisconnected
	}
	return stroke.New(m.scanner.Text()), nil
}

// Disable is a no-op for StdinMachine: there is no hardware to mute, and
// a blocked Scan cannot be interrupted out of band.
func (m *StdinMachine) Disable() {
	m.disabled = true
}

package machine

import (
	"io"

	"github.com/stenoproject/plojo/stroke"
)

// GeminiPRMachine decodes 6-byte Gemini PR packets read from an
// io.Reader. Opening the actual serial device (baud rate, flow control,
// device path) is an external-collaborator concern per the core's
// Machine contract; callers are expected to hand in an already-opened
// port (anything satisfying io.Reader, including a real os.File obtained
// from one of the paths ListPorts reports).
type GeminiPRMachine struct {
	r        io.Reader
	disabled bool
}

// NewGeminiPR wraps an already-open serial connection.
func NewGeminiPR(r io.Reader) *GeminiPRMachine {
	return &GeminiPRMachine{r: r}
}

// Read blocks for one 6-byte packet and decodes it. io.EOF and
// io.ErrUnexpectedEOF (a packet cut short) are reported as
// ErrDisconnected and any other read error is returned as-is, matching the broken-pipe-means-disconnected behavior
// of the original serial driver. A packet that fails to decode (missing
// start marker) is returned as a *MalformedPacketError rather than
// ErrDisconnected, so the driver loop can log it and keep reading.
func (m *GeminiPRMachine) Read() (stroke.Stroke, error) {
	var packet [6]byte
	if _, err := io.ReadFull(m.r, packet[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return "", ErrDisconnected
		}
		return "", err
	}

	s, err := stroke.ParseGeminiPR(packet)
	if err != nil {
		return "", &MalformedPacketError{Reason: err.Error()}
	}
	return s, nil
}

// Disable is advisory only; the packet stream keeps arriving on the wire
// regardless, so the driver loop is expected to discard reads while
// disabled rather than rely on this to silence the device.
func (m *GeminiPRMachine) Disable() {
	m.disabled = true
}

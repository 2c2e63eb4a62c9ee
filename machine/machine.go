// Package machine implements the source side of the pipeline: drivers
// that turn raw input (a Gemini PR serial packet, a line of stdin, a
// keyboard chord) into stroke.Stroke values.
package machine

import (
	"errors"
	"fmt"

	"github.com/stenoproject/plojo/stroke"
)

// ErrDisconnected is returned by Read when the underlying device has
// gone away; the driver loop tears down the pipeline on this error.
var ErrDisconnected = errors.New("machine: disconnected")

// ErrTimedOut is returned by Read when no stroke arrived within the
// driver's polling interval; the driver loop ignores it and reads again.
var ErrTimedOut = errors.New("machine: timed out")

// MalformedPacketError wraps a transport-level decode failure (e.g. a
// Gemini PR packet missing its start marker). The driver loop logs it at
// warning level and continues reading.
type MalformedPacketError struct {
	Reason string
}

func (e *MalformedPacketError) Error() string {
	return fmt.Sprintf("machine: malformed packet: %s", e.Reason)
}

// Machine is the narrow contract the core pipeline depends on. Read
// blocks until a stroke is available or the device fails; Disable
// advisory-mutes the device (`plojo run` calls it each time one of the
// configured disable-input strokes arrives).
type Machine interface {
	Read() (stroke.Stroke, error)
	Disable()
}

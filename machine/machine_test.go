package machine

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenoproject/plojo/stroke"
)

func TestStdinMachineReadsCanonicalizedStroke(t *testing.T) {
	m := NewStdin(strings.NewReader("H-L\nWORLD\n"))

	s, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, stroke.New("H-L"), s)

	s, err = m.Read()
	require.NoError(t, err)
	assert.Equal(t, stroke.New("WORLD"), s)

	_, err = m.Read()
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestGeminiPRMachineDecodesPacket(t *testing.T) {
	// high bit of byte 0 set, no other bits: an empty stroke.
	packet := []byte{0x80, 0, 0, 0, 0, 0}
	m := NewGeminiPR(bytes.NewReader(packet))

	_, err := m.Read()
	require.NoError(t, err)
}

func TestGeminiPRMachineMalformedPacket(t *testing.T) {
	packet := []byte{0x00, 0, 0, 0, 0, 0}
	m := NewGeminiPR(bytes.NewReader(packet))

	_, err := m.Read()
	var malformed *MalformedPacketError
	require.ErrorAs(t, err, &malformed)
}

func TestGeminiPRMachineDisconnectsOnEOF(t *testing.T) {
	m := NewGeminiPR(bytes.NewReader(nil))

	_, err := m.Read()
	assert.ErrorIs(t, err, ErrDisconnected)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestGeminiPRMachinePropagatesOtherErrors(t *testing.T) {
	m := NewGeminiPR(errReader{})

	_, err := m.Read()
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestFindGeorgiPortDoesNotPanic(t *testing.T) {
	// without a real Georgi attached, the glob legitimately finds nothing;
	// this only asserts the no-match path does not panic or hang.
	assert.NotPanics(t, func() {
		FindGeorgiPort()
	})
}

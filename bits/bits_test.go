package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstHighBitIndex(t *testing.T) {
	require.Equal(t, -1, FirstHighBitIndex([]byte{0, 0, 0}))
	require.Equal(t, 0, FirstHighBitIndex([]byte{0x80, 0}))
	require.Equal(t, 15, FirstHighBitIndex([]byte{0x00, 0x01}))
	require.Equal(t, 9, FirstHighBitIndex([]byte{0x00, 0x40}))
}

func TestSpanRoundTrip(t *testing.T) {
	data := make([]byte, 4)
	WriteSpan(data, 3, 11, 0x6AB)
	require.Equal(t, uint16(0x6AB), CopySpan(data, 3, 11))
}

func TestMask(t *testing.T) {
	require.Equal(t, byte(0), Mask(0))
	require.Equal(t, byte(0x0F), Mask(4))
	require.Equal(t, byte(0xFF), Mask(8))
	require.Equal(t, byte(0xFF), Mask(9))
}

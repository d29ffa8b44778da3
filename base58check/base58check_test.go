package base58check

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(rt, "payload")
		encoded := Encode(payload)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, payload, decoded)
	})
}

func TestCorruptedChecksumRejected(t *testing.T) {
	encoded := Encode([]byte{1, 2, 3, 4})

	// Flip the last character, which lands in the checksum tail.
	runes := []rune(encoded)
	if runes[len(runes)-1] == 'a' {
		runes[len(runes)-1] = 'b'
	} else {
		runes[len(runes)-1] = 'a'
	}

	_, err := Decode(string(runes))
	require.Error(t, err)
}

func TestLeadingZeroBytesPreserved(t *testing.T) {
	payload := []byte{0x00, 0x00, 0x01, 0x02}
	encoded := Encode(payload)
	require.True(t, len(encoded) > 0 && encoded[0] == '1' && encoded[1] == '1')

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

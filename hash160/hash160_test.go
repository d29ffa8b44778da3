package hash160

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash160OfEmpty(t *testing.T) {
	got := Sum(nil)
	require.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", hex.EncodeToString(got[:]))
}

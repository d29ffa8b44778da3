package hmac

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHMACSHA256Vector(t *testing.T) {
	// RFC 4231 test case 1
	key := []byte{
		0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b,
		0x0b, 0x0b, 0x0b, 0x0b,
	}
	h := New(sha256.New, key)
	got := h.Sum([]byte("Hi There"))
	require.Equal(t, "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7", hex.EncodeToString(got))
}

func TestHMACSHA512Vector(t *testing.T) {
	key := []byte{
		0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b,
		0x0b, 0x0b, 0x0b, 0x0b,
	}
	h := New(sha512.New, key)
	got := h.Sum([]byte("Hi There"))
	want := "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cdedaa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854"
	require.Equal(t, want, hex.EncodeToString(got))
}

func TestPBKDF2IterZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		PBKDF2(sha512.New, []byte("pw"), []byte("salt"), 0, 64)
	})
}

func TestPBKDF2KnownVector(t *testing.T) {
	// RFC 7914 / common PBKDF2-HMAC-SHA256 vector: P="password", S="salt", c=1, dkLen=32
	got := PBKDF2(sha256.New, []byte("password"), []byte("salt"), 1, 32)
	require.Equal(t, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b", hex.EncodeToString(got))
}

func TestPBKDF2OutputLength(t *testing.T) {
	got := PBKDF2(sha512.New, []byte("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"), []byte("mnemonic"), 2048, 64)
	require.Len(t, got, 64)
}

// Package base58check implements the Base-58 codec with a 4-byte
// truncated double-SHA-256 checksum suffix, used for serialized BIP32
// extended keys and (outside core Bitcoin scope) addresses.
//
// The base-58 digit math itself is delegated to
// github.com/btcsuite/btcd/btcutil/base58; the checksum is computed
// with this module's own hash package so the double-SHA-256
// construction stays consistent with the rest of the core.
package base58check

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/coldkey/walletcore/hash"
)

// ErrChecksumMismatch is returned by Decode when the trailing 4 bytes of
// a decoded payload do not match the recomputed checksum.
var ErrChecksumMismatch = errors.New("base58check: checksum mismatch")

// ErrTooShort is returned by Decode when the payload is shorter than the
// 4-byte checksum it is expected to carry.
var ErrTooShort = errors.New("base58check: payload shorter than checksum")

// Encode returns the Base58Check encoding of b: Base58(b || checksum(b)).
func Encode(b []byte) string {
	checksum := hash.DoubleSHA256Checksum(b)
	payload := make([]byte, 0, len(b)+4)
	payload = append(payload, b...)
	payload = append(payload, checksum[:]...)
	return base58.Encode(payload)
}

// EncodeRaw base58-encodes b with no checksum handling, for callers (like
// addressutil's TRON address encoder) that compute and append their own
// checksum bytes before encoding.
func EncodeRaw(b []byte) string {
	return base58.Encode(b)
}

// DecodeRaw reverses EncodeRaw.
func DecodeRaw(s string) []byte {
	return base58.Decode(s)
}

// Decode reverses Encode, verifying and stripping the 4-byte checksum.
func Decode(s string) ([]byte, error) {
	payload := base58.Decode(s)
	if len(payload) < 4 {
		return nil, ErrTooShort
	}

	body := payload[:len(payload)-4]
	wantChecksum := payload[len(payload)-4:]
	gotChecksum := hash.DoubleSHA256Checksum(body)

	if !bytes.Equal(wantChecksum, gotChecksum[:]) {
		return nil, ErrChecksumMismatch
	}

	return body, nil
}

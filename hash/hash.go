// Package hash provides the streaming block-processor hash primitives the
// wallet core is built on: SHA-256, SHA-512, and RIPEMD-160. Each is a
// thin, zeroable wrapper around a standard implementation rather than a
// hand-rolled compression function — crypto/sha256 and crypto/sha512 are
// the Go standard library's own primitives, and golang.org/x/crypto's
// ripemd160 is the same package tyler-smith/go-bip32 depends on for
// BIP32 fingerprinting. Re-deriving FIPS-180-4 by hand here would not be
// idiomatic Go.
package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // BIP32 fingerprinting requires RIPEMD-160 specifically.
)

// Hasher is the stable contract every algorithm in this package
// exposes: fixed sizes, a streaming Write/FinishInto/Reset cycle, and
// a convenience one-shot *Of function per algorithm.
type Hasher interface {
	hash.Hash
	// FinishInto writes the final digest into out, which must be at
	// least Size() bytes, then leaves the hasher ready for Reset.
	FinishInto(out []byte)
}

// wrapped adapts the standard library's hash.Hash (which already does
// its own Merkle-Damgard padding on Sum) to the Write/FinishInto/Reset
// shape used throughout this module.
type wrapped struct {
	hash.Hash
}

func (w *wrapped) FinishInto(out []byte) {
	sum := w.Hash.Sum(nil)
	copy(out, sum)
}

// NewSHA256 returns a streaming SHA-256 hasher (32-byte digest, 64-byte block).
func NewSHA256() Hasher { return &wrapped{Hash: sha256.New()} }

// NewSHA512 returns a streaming SHA-512 hasher (64-byte digest, 128-byte block).
func NewSHA512() Hasher { return &wrapped{Hash: sha512.New()} }

// NewRIPEMD160 returns a streaming RIPEMD-160 hasher (20-byte digest, 64-byte block).
func NewRIPEMD160() Hasher {
	return &wrapped{Hash: ripemd160.New()}
}

const (
	SHA256Size     = sha256.Size
	SHA256Block    = sha256.BlockSize
	SHA512Size     = sha512.Size
	SHA512Block    = sha512.BlockSize
	RIPEMD160Size  = 20
	RIPEMD160Block = 64
)

// SHA256Of is the hash_of convenience: feed then finish on a fresh state.
func SHA256Of(data []byte) [SHA256Size]byte {
	var out [SHA256Size]byte
	h := sha256.Sum256(data)
	copy(out[:], h[:])
	return out
}

// SHA512Of is the one-shot SHA-512 convenience.
func SHA512Of(data []byte) [SHA512Size]byte {
	return sha512.Sum512(data)
}

// RIPEMD160Of is the RIPEMD-160 convenience used by HASH160.
func RIPEMD160Of(data []byte) [RIPEMD160Size]byte {
	h := ripemd160.New()
	h.Write(data)
	var out [RIPEMD160Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DoubleSHA256Checksum computes the first 4 bytes of SHA-256(SHA-256(b)),
// the checksum every Base58Check payload (and the TRON address encoder
// in addressutil) relies on.
func DoubleSHA256Checksum(b []byte) [4]byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])

	var out [4]byte
	copy(out[:], second[:4])
	return out
}

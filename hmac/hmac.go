// Package hmac implements the keyed-hash message authentication code and
// PBKDF2 stretching the wallet core depends on for BIP32 master-key
// derivation (HMAC-SHA512) and BIP39/Electrum seed derivation
// (PBKDF2-HMAC-SHA512). It is a generic wrapper over the standard
// library's crypto/hmac construction rather than a hand-rolled
// ipad/opad implementation, matching how tyler-smith/go-bip32 and
// tyler-smith/go-bip39 build on crypto/hmac.
package hmac

import (
	"crypto/hmac"
	"hash"
)

// HMAC holds a constructor for the underlying hash and the key.
// crypto/hmac derives and stores the inner/outer key pads internally,
// so this type's job is just to expose a stable Sum/Zero cycle without
// re-deriving ipad/opad by hand.
type HMAC struct {
	newHash func() hash.Hash
	key     []byte
	h       hash.Hash
}

// New builds an HMAC instance. newHash must construct a fresh instance of
// the underlying hash algorithm (sha256.New, sha512.New, ...).
func New(newHash func() hash.Hash, key []byte) *HMAC {
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return &HMAC{
		newHash: newHash,
		key:     keyCopy,
		h:       hmac.New(newHash, keyCopy),
	}
}

// Sum computes HMAC(key, msg), writing the result into a fresh slice of
// the underlying hash's digest size.
func (m *HMAC) Sum(msg []byte) []byte {
	m.h.Reset()
	m.h.Write(msg)
	return m.h.Sum(nil)
}

// Size is the digest size of the underlying hash.
func (m *HMAC) Size() int { return m.h.Size() }

// Zero overwrites the retained key material. Intended to be called once
// the HMAC instance (and any derived PBKDF2 engine) is no longer needed.
func (m *HMAC) Zero() {
	for i := range m.key {
		m.key[i] = 0
	}
}

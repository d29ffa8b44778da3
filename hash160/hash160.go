// Package hash160 computes RIPEMD-160(SHA-256(x)), used for BIP32
// parent fingerprints and (outside core Bitcoin scope) address hashing.
package hash160

import "github.com/coldkey/walletcore/hash"

const Size = hash.RIPEMD160Size

// Sum computes HASH160(x).
func Sum(x []byte) [Size]byte {
	sha := hash.SHA256Of(x)
	return hash.RIPEMD160Of(sha[:])
}

// Fingerprint returns the first 4 bytes of HASH160(compressedPubKey),
// used as a BIP32 parent fingerprint.
func Fingerprint(compressedPubKey []byte) [4]byte {
	h := Sum(compressedPubKey)
	var out [4]byte
	copy(out[:], h[:4])
	return out
}

// Package addressutil holds chain-specific address-encoding helpers
// that sit just outside the Bitcoin-only BIP32 core, built around the
// golang.org/x/crypto/sha3 Keccak-256 implementation.
package addressutil

import (
	"github.com/coldkey/walletcore/base58check"
	"github.com/coldkey/walletcore/ec"
	"github.com/coldkey/walletcore/hash"
	"golang.org/x/crypto/sha3"
)

// tronPrefix is TRON's network identifier byte (0x41), which is what
// makes TRON addresses decode to a leading 'T' in Base58.
const tronPrefix = 0x41

// TronAddress derives a TRON address from a secp256k1 public point:
// Keccak-256(uncompressed X||Y) -> last 20 bytes -> prefix 0x41 ->
// double-SHA-256 checksum -> Base58.
func TronAddress(p ec.Point) string {
	uncompressed := make([]byte, 64)
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(uncompressed[32-len(xb):32], xb)
	copy(uncompressed[64-len(yb):], yb)

	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressed)
	digest := h.Sum(nil)

	addressBytes := make([]byte, 0, 21)
	addressBytes = append(addressBytes, tronPrefix)
	addressBytes = append(addressBytes, digest[len(digest)-20:]...)

	checksum := hash.DoubleSHA256Checksum(addressBytes)
	withChecksum := append(addressBytes, checksum[:]...)

	return base58check.EncodeRaw(withChecksum)
}

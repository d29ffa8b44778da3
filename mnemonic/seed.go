package mnemonic

import (
	"crypto/sha512"

	"github.com/coldkey/walletcore/hmac"
)

// BIP39Seed runs PBKDF2 seed derivation: 2048 iterations of HMAC-SHA512,
// salt = "mnemonic" || normalized_passphrase, 64-byte output. The
// mnemonic itself is normalized first.
func BIP39Seed(rawMnemonic, passphrase string) []byte {
	normalized := Normalize(rawMnemonic, DefaultNormalizeOptions())
	salt := "mnemonic" + Normalize(passphrase, PassphraseNormalizeOptions())
	return hmac.PBKDF2(sha512.New, []byte(normalized), []byte(salt), 2048, 64)
}

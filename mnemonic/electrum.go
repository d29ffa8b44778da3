package mnemonic

import (
	"crypto/sha512"

	"github.com/coldkey/walletcore/bits"
	"github.com/coldkey/walletcore/hmac"
)

// ElectrumVersion identifies one of the four Electrum seed-version
// prefix patterns derived from HMAC-SHA512("Seed version", mnemonic).
type ElectrumVersion int

const (
	Legacy ElectrumVersion = iota
	Segwit
	Legacy2FA
	Segwit2FA
)

func (v ElectrumVersion) String() string {
	switch v {
	case Legacy:
		return "Legacy"
	case Segwit:
		return "Segwit"
	case Legacy2FA:
		return "Legacy 2FA"
	case Segwit2FA:
		return "Segwit 2FA"
	default:
		return "Unknown"
	}
}

// electrumSeedVersionKey is the ASCII HMAC key Electrum mnemonics are
// versioned against.
var electrumSeedVersionKey = []byte("Seed version")

// electrumPrefixValidators are evaluated in this fixed order. Segwit,
// Legacy2FA and Segwit2FA all start with byte 0x10; each predicate also
// bounds the second byte's high nibble (0x0_, 0x1_, 0x2_), so the four
// predicates are mutually exclusive.
var electrumPrefixValidators = []struct {
	version ElectrumVersion
	matches func(mac []byte) bool
}{
	{Legacy, func(mac []byte) bool { return len(mac) > 0 && mac[0] == 0x01 }},
	{Segwit, func(mac []byte) bool { return len(mac) > 1 && mac[0] == 0x10 && mac[1] < 0x10 }},
	{Legacy2FA, func(mac []byte) bool { return len(mac) > 1 && mac[0] == 0x10 && mac[1] >= 0x10 && mac[1] < 0x20 }},
	{Segwit2FA, func(mac []byte) bool { return len(mac) > 1 && mac[0] == 0x10 && mac[1] >= 0x20 && mac[1] < 0x30 }},
}

// ElectrumDecodeResult reports which (if any) Electrum version prefix a
// mnemonic's HMAC-SHA512("Seed version", mnemonic) matches.
type ElectrumDecodeResult struct {
	Matched bool
	Version ElectrumVersion
	// MAC is the full HMAC-SHA512 output; useful for diagnostics when
	// Matched is false (no version prefix matched any predicate).
	MAC []byte
	// Entropy holds the word-index-packed bytes recovered from the
	// mnemonic whenever every word resolves against the wordlist, even
	// when Matched is false — a caller can still inspect the bytes a
	// mnemonic decodes to after a version-prefix mismatch, the same way
	// the Rust original's InvalidVersion/OldFormat parse outcomes still
	// hand back recovered bytes instead of discarding them.
	Entropy []byte
	// BadWord / Position report the first word that failed wordlist
	// lookup; Entropy is nil whenever BadWord is non-empty.
	BadWord  string
	Position int
}

// DecodeElectrumVersion normalizes the mnemonic, computes its seed
// version MAC, and checks it against each version predicate in the
// fixed order above. A mnemonic may satisfy a BIP39 checksum and fail
// every Electrum predicate, or vice versa — this function only reports
// the Electrum side of that determination.
func DecodeElectrumVersion(rawMnemonic string) ElectrumDecodeResult {
	normalized := Normalize(rawMnemonic, DefaultNormalizeOptions())
	mac := hmac.New(sha512.New, electrumSeedVersionKey).Sum([]byte(normalized))

	indices, badWord, pos, ok := ElectrumWordsToEntropyIndices(normalized)
	var entropy []byte
	if ok {
		entropy = packWordIndices(indices)
	}

	for _, v := range electrumPrefixValidators {
		if v.matches(mac) {
			return ElectrumDecodeResult{Matched: true, Version: v.version, MAC: mac, Entropy: entropy, BadWord: badWord, Position: pos}
		}
	}

	if !ok {
		return ElectrumDecodeResult{MAC: mac, BadWord: badWord, Position: pos}
	}
	return ElectrumDecodeResult{MAC: mac, Entropy: entropy}
}

// packWordIndices packs each wordlist index into an 11-bit group,
// mirroring EncodeBIP39's bit-packing but with no checksum suffix —
// Electrum mnemonics carry no BIP39-style checksum of their own.
func packWordIndices(indices []int) []byte {
	totalBits := len(indices) * BitsPerWord
	buf := make([]byte, (totalBits+7)/8)
	for i, idx := range indices {
		bits.WriteSpan(buf, i*BitsPerWord, BitsPerWord, uint16(idx))
	}
	return buf
}

// ElectrumWordsToEntropyIndices maps each word in a normalized Electrum
// mnemonic to its wordlist index, failing on the first unknown word.
// Electrum reuses the same 2048-word English list as BIP39 here (a
// genuine Electrum wordlist differs upstream, but word-membership
// validation ahead of seed derivation doesn't need that distinct list).
func ElectrumWordsToEntropyIndices(normalized string) ([]int, string, int, bool) {
	words := Words(normalized)
	indices := make([]int, len(words))
	for i, w := range words {
		idx, ok := IndexOf(w)
		if !ok {
			return nil, w, i, false
		}
		indices[i] = idx
	}
	return indices, "", 0, true
}

// ElectrumSeed derives the 64-byte seed for an Electrum mnemonic using
// the "electrum" salt prefix, independent of which version predicate
// matched (seed derivation does not depend on the version byte once
// the mnemonic has been validated).
func ElectrumSeed(rawMnemonic, passphrase string) []byte {
	normalized := Normalize(rawMnemonic, DefaultNormalizeOptions())
	salt := "electrum" + Normalize(passphrase, PassphraseNormalizeOptions())
	return hmac.PBKDF2(sha512.New, []byte(normalized), []byte(salt), 2048, 64)
}

// Package mnemonic implements bidirectional BIP39 mnemonic<->entropy
// encoding over a fixed wordlist, plus Electrum word-to-index decoding,
// version-prefix detection and seed derivation (Electrum has no
// entropy-to-mnemonic encoder here).
package mnemonic

import (
	"sort"

	"github.com/tyler-smith/go-bip39"
)

// BitsPerWord is the fixed group width BIP39 packs entropy+checksum
// bits into; 2^11 == 2048, the wordlist size.
const BitsPerWord = 11

// words snapshots the BIP39 English wordlist from
// tyler-smith/go-bip39 once at init time, then never mutates again —
// the same one-time-initialized-immutable pattern used for curve
// parameters elsewhere in this module.
var words []string

func init() {
	words = bip39.GetWordList()
	if len(words) != 2048 {
		panic("mnemonic: wordlist must contain exactly 2048 words")
	}
}

// WordAt returns the wordlist entry at index i by direct indexing.
func WordAt(i int) string {
	return words[i]
}

// IndexOf finds a word's index via binary search over the
// lexicographically sorted wordlist. The BIP39 English wordlist is
// already sorted, so this is the natural lookup strategy without
// carrying a second map alongside the slice.
func IndexOf(word string) (int, bool) {
	i := sort.SearchStrings(words, word)
	if i < len(words) && words[i] == word {
		return i, true
	}
	return 0, false
}

// WordCount enumerates the valid BIP39 mnemonic lengths.
type WordCount int

const (
	Twelve     WordCount = 12
	Fifteen    WordCount = 15
	Eighteen   WordCount = 18
	TwentyOne  WordCount = 21
	TwentyFour WordCount = 24
)

// IsValidBIP39WordCount reports whether n is one of the five valid
// BIP39 mnemonic lengths.
func IsValidBIP39WordCount(n int) bool {
	switch WordCount(n) {
	case Twelve, Fifteen, Eighteen, TwentyOne, TwentyFour:
		return true
	default:
		return false
	}
}

// entropyBitsForWordCount returns the entropy-bit length encoded by a
// mnemonic of the given word count (the checksum is wordCount*11/33 bits
// shorter than the total bit length).
func entropyBitsForWordCount(wc WordCount) int {
	totalBits := int(wc) * BitsPerWord
	// totalBits = entropyBits + entropyBits/32
	return totalBits * 32 / 33
}

package mnemonic

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeAllZeroEntropy(t *testing.T) {
	entropy := make([]byte, 16)
	m, err := EncodeBIP39(entropy)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("abandon ", 11)+"about", m)
}

func TestDecodeValidAllZero(t *testing.T) {
	words := strings.Fields(strings.Repeat("abandon ", 11) + "about")
	result := DecodeBIP39(words)
	require.Equal(t, Valid, result.Kind)
	require.Equal(t, make([]byte, 16), result.Entropy)
}

func TestDecodeInvalidChecksum(t *testing.T) {
	words := strings.Fields(strings.Repeat("abandon ", 11) + "abandon")
	result := DecodeBIP39(words)
	require.Equal(t, InvalidChecksum, result.Kind)
	require.Equal(t, make([]byte, 16), result.Entropy)
}

func TestDecodeInvalidWord(t *testing.T) {
	words := strings.Fields(strings.Repeat("abandon ", 11) + "zzzznotaword")
	result := DecodeBIP39(words)
	require.Equal(t, InvalidWord, result.Kind)
	require.Equal(t, "zzzznotaword", result.Word)
	require.Equal(t, 11, result.Position)
}

func TestDecodeInvalidLength(t *testing.T) {
	result := DecodeBIP39([]string{"abandon", "abandon"})
	require.Equal(t, InvalidLength, result.Kind)
}

func TestEncodeDecodeRoundTripAllLengths(t *testing.T) {
	for _, bits := range []int{128, 160, 192, 224, 256} {
		entropy := make([]byte, bits/8)
		for i := range entropy {
			entropy[i] = byte(i + 1)
		}

		m, err := EncodeBIP39(entropy)
		require.NoError(t, err)

		result := DecodeBIP39(strings.Fields(m))
		require.Equal(t, Valid, result.Kind)
		require.Equal(t, entropy, result.Entropy)
	}
}

func TestBIP39SeedVector(t *testing.T) {
	m := strings.Repeat("abandon ", 11) + "about"
	seed := BIP39Seed(m, "TREZOR")
	require.Equal(t, 64, len(seed))
	require.True(t, strings.HasPrefix(hex.EncodeToString(seed), "c55257c360c07c72"))
}

func TestElectrumVersionPredicateOrder(t *testing.T) {
	require.True(t, electrumPrefixValidators[0].matches([]byte{0x01, 0x00}))
	require.True(t, electrumPrefixValidators[1].matches([]byte{0x10, 0x05}))
	require.True(t, electrumPrefixValidators[2].matches([]byte{0x10, 0x15}))
	require.True(t, electrumPrefixValidators[3].matches([]byte{0x10, 0x25}))
	require.False(t, electrumPrefixValidators[1].matches([]byte{0x10, 0x15}))
}

func TestDecodeElectrumVersionRecoversEntropyRegardlessOfMatch(t *testing.T) {
	result := DecodeElectrumVersion("abandon abandon about")
	require.Empty(t, result.BadWord)
	require.NotEmpty(t, result.Entropy)
	require.Len(t, result.MAC, 64)

	withBadWord := DecodeElectrumVersion("abandon notaword about")
	require.Equal(t, "notaword", withBadWord.BadWord)
	require.Nil(t, withBadWord.Entropy)
}

func TestNormalizeLowercasesAndCollapses(t *testing.T) {
	got := Normalize("  Abandon   ABANDON  ", DefaultNormalizeOptions())
	require.Equal(t, "abandon abandon", got)
}

func TestPassphraseNormalizePreservesCase(t *testing.T) {
	got := Normalize("TREZOR", PassphraseNormalizeOptions())
	require.Equal(t, "TREZOR", got)
}

func TestElectrumWordsToEntropyIndices(t *testing.T) {
	normalized := Normalize("abandon abandon about", DefaultNormalizeOptions())
	indices, badWord, pos, ok := ElectrumWordsToEntropyIndices(normalized)
	require.True(t, ok)
	require.Equal(t, "", badWord)
	require.Equal(t, 0, pos)
	require.Len(t, indices, 3)

	normalized = Normalize("abandon notaword about", DefaultNormalizeOptions())
	_, badWord, pos, ok = ElectrumWordsToEntropyIndices(normalized)
	require.False(t, ok)
	require.Equal(t, "notaword", badWord)
	require.Equal(t, 1, pos)
}

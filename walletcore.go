// Package walletcore is the top-level convenience API tying the core
// layers together: mnemonic generation, mnemonic-to-seed conversion, BIP32 master-key
// derivation, and BIP44-style path derivation, parameterized over
// network and coin instead of hardcoded to a single chain.
package walletcore

import (
	"fmt"

	"github.com/coldkey/walletcore/bip32"
	"github.com/coldkey/walletcore/mnemonic"
	"github.com/tyler-smith/go-bip39"
)

// Purpose is the BIP44 purpose constant (always 44' for BIP44 compliance).
const Purpose uint32 = 44

// GenerateMnemonic creates a new BIP39 mnemonic of the requested entropy
// strength (128/160/192/224/256 bits), delegating entropy generation to
// tyler-smith/go-bip39 (crypto/rand under the hood) and encoding through
// this module's own mnemonic.EncodeBIP39.
func GenerateMnemonic(bitSize int) (string, error) {
	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", fmt.Errorf("walletcore: generating entropy: %w", err)
	}

	return mnemonic.EncodeBIP39(entropy)
}

// DerivePath applies a BIP44-shaped path m/44'/coin'/account'/chain/address
// to a master key, built on this module's own bip32.Key/DeriveChild
// rather than tyler-smith/go-bip32's.
func DerivePath(master *bip32.Key, coin, account, chain, address uint32) (*bip32.Key, error) {
	indices := []uint32{
		Purpose + bip32.HardenedOffset,
		coin + bip32.HardenedOffset,
		account + bip32.HardenedOffset,
		chain,
		address,
	}

	return bip32.DerivePath(master, indices)
}

// DeriveFromMnemonic converts a BIP39 mnemonic + passphrase into the
// BIP44 extended key at m/44'/coin'/account'/chain/address, running
// entirely through this module's own mnemonic/bip32/ec stack.
func DeriveFromMnemonic(rawMnemonic, passphrase string, network bip32.Network, coin, account, chain, address uint32) (*bip32.Key, error) {
	seed := mnemonic.BIP39Seed(rawMnemonic, passphrase)
	defer zero(seed)

	master, err := bip32.MasterKeyFromSeed(seed, network)
	if err != nil {
		return nil, fmt.Errorf("walletcore: deriving master key: %w", err)
	}
	defer master.Zero()

	return DerivePath(master, coin, account, chain, address)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

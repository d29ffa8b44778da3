package bip32

import (
	"encoding/hex"
	"testing"

	"github.com/coldkey/walletcore/mnemonic"
	"github.com/stretchr/testify/require"
)

func TestMasterKeyVector1(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)
	require.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", master.String())
	require.True(t, master.IsMaster())
}

func TestDerivationVector1ChainM0H(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)

	child, err := DerivePathString(master, "m/0'")
	require.NoError(t, err)
	require.Equal(t, "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7", child.String())
}

func TestDerivationVector1ChainM0H1(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)

	child, err := DerivePathString(master, "m/0'/1")
	require.NoError(t, err)
	require.Equal(t, "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs", child.String())
}

func TestMnemonicSeedMasterKeyVector(t *testing.T) {
	seed := mnemonic.BIP39Seed("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", "TREZOR")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)
	require.Equal(t, "xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF", master.String())
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)

	b := master.Serialize()
	require.Len(t, b, SerializedKeyLength)

	decoded, err := DeserializeKey(b)
	require.NoError(t, err)
	require.Equal(t, master.String(), decoded.String())
}

func TestNeuterProducesPublicKey(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)

	pub, err := master.Neuter()
	require.NoError(t, err)
	require.False(t, pub.IsPrivate())
	require.True(t, pub.String()[:4] == "xpub")
}

func TestHardenedFromPublicRejected(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)

	pub, err := master.Neuter()
	require.NoError(t, err)

	_, err = CKDPub(pub, HardenedOffset)
	require.ErrorIs(t, err, ErrHardenedFromPublic)
}

func TestCKDPubMatchesNeuteredCKDPriv(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)

	childPriv, err := CKDPriv(master, 0)
	require.NoError(t, err)

	parentPub, err := master.Neuter()
	require.NoError(t, err)
	childFromPub, err := CKDPub(parentPub, 0)
	require.NoError(t, err)

	childPrivNeutered, err := childPriv.Neuter()
	require.NoError(t, err)

	require.Equal(t, childFromPub.KeyMaterial, childPrivNeutered.KeyMaterial)
	require.Equal(t, childFromPub.ChainCode, childPrivNeutered.ChainCode)
}

func TestSeedLengthValidation(t *testing.T) {
	_, err := MasterKeyFromSeed(make([]byte, 8), MainNet)
	require.ErrorIs(t, err, ErrSeedLength)

	_, err = MasterKeyFromSeed(make([]byte, 65), MainNet)
	require.ErrorIs(t, err, ErrSeedLength)
}

func TestSeedDefinesMasterInvariant(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, MainNet)
	require.NoError(t, err)
	require.Equal(t, uint8(0), master.Depth)
	require.Equal(t, [4]byte{}, master.ParentFingerprint)
	require.Equal(t, uint32(0), master.ChildNumber)
}

func TestDeserializeRejectsShortInput(t *testing.T) {
	_, err := DeserializeKey(make([]byte, 10))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestPathParsing(t *testing.T) {
	idx, err := ParsePath("m/44'/0'/0'/1")
	require.NoError(t, err)
	require.Equal(t, []uint32{44 + HardenedOffset, 0 + HardenedOffset, 0 + HardenedOffset, 1}, idx)
}

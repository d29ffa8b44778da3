// Package bip32 implements extended-key derivation: master key from
// seed, child-from-parent (hardened and non-hardened), private-to-
// public conversion, and derivation-path traversal.
//
// The derivation logic is this module's own — it is built from lower
// layers that wire to real dependencies: HMAC (crypto/hmac via the
// hmac package), EC scalar/point arithmetic (the ec package, built on
// this module's bigint layer), and HASH160/Base58Check for fingerprinting and
// serialization. Its overall shape follows tyler-smith/go-bip32's
// Key/NewMasterKey/NewChildKey API, generalized to carry both
// MainNet/TestNet versions and a richer error taxonomy.
package bip32

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/coldkey/walletcore/base58check"
	"github.com/coldkey/walletcore/ec"
	"github.com/coldkey/walletcore/hash160"
)

const SerializedKeyLength = 78

var (
	// ErrInvalidLength reports a byte buffer that is not exactly 78 bytes, or a
	// Base58Check string that doesn't decode to one.
	ErrInvalidLength = errors.New("bip32: serialized extended key must be exactly 78 bytes")
	// ErrUnknownVersion reports a version prefix that isn't one of the
	// four recognized MainNet/TestNet private/public constants.
	ErrUnknownVersion = errors.New("bip32: unknown version bytes")
	// ErrNotPrivate reports an operation (private-key access, signing-style
	// derivation) requested on a public-only extended key.
	ErrNotPrivate = errors.New("bip32: key is public-only")
	// ErrHardenedFromPublic reports a hardened child requested from a
	// public parent, which is mathematically impossible.
	ErrHardenedFromPublic = errors.New("bip32: cannot derive a hardened child from a public key")
)

// HardenedOffset is added to a child index to request hardened
// derivation (i >= 2^31).
const HardenedOffset uint32 = 0x80000000

// Key is the in-memory form of a serialized extended key: a 78-byte
// wire record plus the network/kind it was parsed with. KeyMaterial and
// ChainCode are the only fields holding secret-adjacent bytes; Zero
// wipes both.
type Key struct {
	Version           Version
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
	ChainCode         [32]byte
	// KeyMaterial is 33 bytes: 0x00||scalar for private keys,
	// compressed-SEC1 point for public keys.
	KeyMaterial [33]byte
}

// IsPrivate reports whether KeyMaterial holds a private scalar.
func (k *Key) IsPrivate() bool { return k.Version.kind() == PrivateKind }

// IsMaster reports the master-key invariant: depth=0 <->
// parent_fingerprint=0 <-> child_number=0.
func (k *Key) IsMaster() bool {
	return k.Depth == 0 && k.ParentFingerprint == [4]byte{} && k.ChildNumber == 0
}

// PrivateScalar returns the 32-byte private scalar as a big.Int. It
// returns ErrNotPrivate for a public-only key.
func (k *Key) PrivateScalar() (*big.Int, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}
	return new(big.Int).SetBytes(k.KeyMaterial[1:]), nil
}

// PublicPoint returns the key's public point, computing it from the
// private scalar (k*G) when the key is private, or parsing the
// compressed SEC1 bytes directly when it's already public. The scalar
// copy returned by PrivateScalar is cleared via defer once the
// multiplication (run through a scratch ec.PointMultiplicationContext)
// has produced the result.
func (k *Key) PublicPoint() (ec.Point, error) {
	if k.IsPrivate() {
		scalar, err := k.PrivateScalar()
		if err != nil {
			return ec.Point{}, err
		}
		defer scalar.SetInt64(0)

		ctx := ec.NewPointMultiplicationContext()
		defer ctx.Zero()

		result := ctx.MultiplyBase(scalar)
		// Copy out of ctx's scratch storage before the deferred Zero
		// above runs, since the returned Point currently aliases it.
		return ec.Point{X: new(big.Int).Set(result.X), Y: new(big.Int).Set(result.Y)}, nil
	}

	return ec.ParseCompressedPoint(k.KeyMaterial[:])
}

// CompressedPublicKey returns the 33-byte compressed SEC1 public key,
// whether k is private or already public.
func (k *Key) CompressedPublicKey() ([]byte, error) {
	if !k.IsPrivate() {
		out := make([]byte, 33)
		copy(out, k.KeyMaterial[:])
		return out, nil
	}

	p, err := k.PublicPoint()
	if err != nil {
		return nil, err
	}
	return ec.SerializeCompressedPoint(p), nil
}

// Neuter returns the public-only counterpart of a private key: same
// depth/fingerprint/child-number/chain-code, version switched to the
// public variant, key material replaced with the compressed point.
func (k *Key) Neuter() (*Key, error) {
	if !k.IsPrivate() {
		cp := *k
		return &cp, nil
	}

	pub, err := k.CompressedPublicKey()
	if err != nil {
		return nil, err
	}

	out := &Key{
		Version:           versionFor(k.Version.network(), PublicKind),
		Depth:             k.Depth,
		ParentFingerprint: k.ParentFingerprint,
		ChildNumber:       k.ChildNumber,
		ChainCode:         k.ChainCode,
	}
	copy(out.KeyMaterial[:], pub)
	return out, nil
}

// Fingerprint returns the first 4 bytes of HASH160(compressed pubkey),
// used as the child's ParentFingerprint.
func (k *Key) Fingerprint() ([4]byte, error) {
	pub, err := k.CompressedPublicKey()
	if err != nil {
		return [4]byte{}, err
	}
	return hash160.Fingerprint(pub), nil
}

// Zero overwrites the chain code and key material. Call this on every
// replaced copy of a key in a derivation chain.
func (k *Key) Zero() {
	for i := range k.ChainCode {
		k.ChainCode[i] = 0
	}
	for i := range k.KeyMaterial {
		k.KeyMaterial[i] = 0
	}
}

// Serialize encodes k into its 78-byte wire form: version(4) ||
// depth(1) || parent_fingerprint(4) || child_number(4) ||
// chain_code(32) || key_material(33).
func (k *Key) Serialize() []byte {
	out := make([]byte, SerializedKeyLength)
	binary.BigEndian.PutUint32(out[0:4], uint32(k.Version))
	out[4] = k.Depth
	copy(out[5:9], k.ParentFingerprint[:])
	binary.BigEndian.PutUint32(out[9:13], k.ChildNumber)
	copy(out[13:45], k.ChainCode[:])
	copy(out[45:78], k.KeyMaterial[:])
	return out
}

// DeserializeKey parses the 78-byte wire form back into a Key.
func DeserializeKey(b []byte) (*Key, error) {
	if len(b) != SerializedKeyLength {
		return nil, ErrInvalidLength
	}

	v := Version(binary.BigEndian.Uint32(b[0:4]))
	if v != MainNetPrivate && v != MainNetPublic && v != TestNetPrivate && v != TestNetPublic {
		return nil, ErrUnknownVersion
	}

	k := &Key{
		Version:     v,
		Depth:       b[4],
		ChildNumber: binary.BigEndian.Uint32(b[9:13]),
	}
	copy(k.ParentFingerprint[:], b[5:9])
	copy(k.ChainCode[:], b[13:45])
	copy(k.KeyMaterial[:], b[45:78])
	return k, nil
}

// String returns the Base58Check-encoded serialized key ("xprv...",
// "xpub...", "tprv...", "tpub...").
func (k *Key) String() string {
	return base58check.Encode(k.Serialize())
}

// ParseString decodes a Base58Check-encoded extended key string.
func ParseString(s string) (*Key, error) {
	b, err := base58check.Decode(s)
	if err != nil {
		return nil, err
	}
	return DeserializeKey(b)
}

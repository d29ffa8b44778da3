package bip32

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/coldkey/walletcore/bigint"
	"github.com/coldkey/walletcore/ec"
	"github.com/coldkey/walletcore/hash160"
	"github.com/coldkey/walletcore/hmac"
)

// ErrDerivationConstraintViolated is the sentinel wrapped by
// DerivationConstraintError: check it with errors.Is to detect
// "derived scalar ≡ 0 mod n" or "derived point is ∞" without inspecting
// the failing index.
var ErrDerivationConstraintViolated = errors.New("bip32: derivation constraint violated")

// ErrSeedLength reports a seed outside the [16, 64]-byte range required
// for master-key derivation.
var ErrSeedLength = errors.New("bip32: seed must be between 16 and 64 bytes")

// DerivationConstraintError carries the failing child index alongside
// ErrDerivationConstraintViolated: a caller can recover the index and
// retry at i+1, or abort the whole path.
type DerivationConstraintError struct {
	Index uint32
	cause string
}

func (e *DerivationConstraintError) Error() string {
	return fmt.Sprintf("bip32: derivation constraint violated at index %d: %s", e.Index, e.cause)
}

func (e *DerivationConstraintError) Unwrap() error { return ErrDerivationConstraintViolated }

var bitcoinSeedKey = []byte("Bitcoin seed")

// bigFrom copies u's value into a fresh *big.Int for passing into the
// ec package's big.Int-typed API. The caller is responsible for
// clearing the returned value once it's no longer needed.
func bigFrom(u *bigint.Unsigned) *big.Int {
	return new(big.Int).SetBytes(u.ToBigEndianBytes())
}

// MasterKeyFromSeed computes the master key from a seed: I =
// HMAC-SHA512("Bitcoin seed", seed); IL becomes the master scalar, IR
// the master chain code. Depth, parent fingerprint, and child number
// are all zero, satisfying the master-key invariant. The master scalar
// is held in a bigint.Unsigned and cleared via defer on every return
// path, including success.
func MasterKeyFromSeed(seed []byte, network Network) (*Key, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrSeedLength
	}

	mac := hmac.New(sha512.New, bitcoinSeedKey)
	i := mac.Sum(seed)
	mac.Zero()
	defer zero(i)

	il := i[:32]
	ir := i[32:]

	scalar := bigint.FromBigEndianBytes(il)
	defer scalar.Zero()

	scalarBig := bigFrom(scalar)
	defer scalarBig.SetInt64(0)

	if err := ec.ValidateScalar(scalarBig); err != nil {
		return nil, &DerivationConstraintError{Index: 0, cause: "master scalar out of [1, n)"}
	}

	k := &Key{Version: versionFor(network, PrivateKind)}
	k.KeyMaterial[0] = 0x00
	copy(k.KeyMaterial[1:], il)
	copy(k.ChainCode[:], ir)

	return k, nil
}

// CKDPriv derives child private key i from a private parent. Hardened
// derivation (i >= HardenedOffset) mixes in the parent's private
// scalar; non-hardened mixes in the parent's public point. A derived
// scalar of 0, or IL >= n, is reported as a DerivationConstraintError
// carrying i — the caller decides whether to retry at i+1. Every
// secret scalar this function touches (IL, the parent's scalar, the
// reduced child scalar) is a bigint.Unsigned cleared via defer before
// returning, success or failure.
func CKDPriv(parent *Key, i uint32) (*Key, error) {
	if !parent.IsPrivate() {
		return nil, ErrNotPrivate
	}

	var data []byte
	if i >= HardenedOffset {
		data = make([]byte, 0, 37)
		data = append(data, parent.KeyMaterial[:]...)
	} else {
		pub, err := parent.CompressedPublicKey()
		if err != nil {
			return nil, err
		}
		data = make([]byte, 0, 37)
		data = append(data, pub...)
	}

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], i)
	data = append(data, idx[:]...)

	mac := hmac.New(sha512.New, parent.ChainCode[:])
	ires := mac.Sum(data)
	mac.Zero()
	defer zero(ires)

	il := ires[:32]
	ir := ires[32:]

	ilInt := bigint.FromBigEndianBytes(il)
	defer ilInt.Zero()

	ilBig := bigFrom(ilInt)
	defer ilBig.SetInt64(0)

	if ec.ValidateScalar(ilBig) != nil {
		return nil, &DerivationConstraintError{Index: i, cause: "IL out of [1, n)"}
	}

	parentScalarBig, err := parent.PrivateScalar()
	if err != nil {
		return nil, err
	}
	defer parentScalarBig.SetInt64(0)

	parentScalar := bigint.FromBigEndianBytes(parentScalarBig.Bytes())
	defer parentScalar.Zero()

	childScalar := bigint.NewUnsigned().Add(ilInt, parentScalar)
	defer childScalar.Zero()

	n := bigint.FromBigEndianBytes(ec.Order().Bytes())
	reducedChild := bigint.NewUnsigned()
	reducedChild.Modulo(childScalar, n)
	defer reducedChild.Zero()

	if reducedChild.IsZero() {
		return nil, &DerivationConstraintError{Index: i, cause: "derived scalar is zero"}
	}

	fp, err := parent.Fingerprint()
	if err != nil {
		return nil, err
	}

	child := &Key{
		Version:           parent.Version,
		Depth:             parent.Depth + 1,
		ParentFingerprint: fp,
		ChildNumber:       i,
	}
	copy(child.ChainCode[:], ir)
	child.KeyMaterial[0] = 0x00
	copy(child.KeyMaterial[1:], reducedChild.ToFixedBigEndianBytes(32))

	return child, nil
}

// CKDPub derives child public key i from a public parent. Hardened
// indices are rejected outright, since a public parent can never
// produce a hardened child. The IL*G multiplication runs through a
// fresh ec.PointMultiplicationContext, zeroed via defer once the child point
// has been serialized.
func CKDPub(parent *Key, i uint32) (*Key, error) {
	if i >= HardenedOffset {
		return nil, ErrHardenedFromPublic
	}

	parentPub, err := parent.CompressedPublicKey()
	if err != nil {
		return nil, err
	}

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], i)
	data := append(append([]byte{}, parentPub...), idx[:]...)

	mac := hmac.New(sha512.New, parent.ChainCode[:])
	ires := mac.Sum(data)
	mac.Zero()
	defer zero(ires)

	il := ires[:32]
	ir := ires[32:]

	ilInt := bigint.FromBigEndianBytes(il)
	defer ilInt.Zero()

	ilBig := bigFrom(ilInt)
	defer ilBig.SetInt64(0)

	if ec.ValidateScalar(ilBig) != nil {
		return nil, &DerivationConstraintError{Index: i, cause: "IL out of [1, n)"}
	}

	parentPoint, err := parent.PublicPoint()
	if err != nil {
		return nil, err
	}

	ctx := ec.NewPointMultiplicationContext()
	defer ctx.Zero()
	ilG := ctx.MultiplyBase(ilBig)

	childPoint := ec.Add(parentPoint, ilG)
	if childPoint.IsInfinity() {
		return nil, &DerivationConstraintError{Index: i, cause: "derived point is infinity"}
	}

	parentFp := hash160.Fingerprint(parentPub)

	child := &Key{
		Version:           parent.Version,
		Depth:             parent.Depth + 1,
		ParentFingerprint: parentFp,
		ChildNumber:       i,
	}
	copy(child.ChainCode[:], ir)
	copy(child.KeyMaterial[:], ec.SerializeCompressedPoint(childPoint))

	return child, nil
}

// DeriveChild dispatches to CKDPriv or CKDPub depending on whether
// parent is private, the single entry point path traversal uses per
// step.
func DeriveChild(parent *Key, i uint32) (*Key, error) {
	if parent.IsPrivate() {
		return CKDPriv(parent, i)
	}
	return CKDPub(parent, i)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

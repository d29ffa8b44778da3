package ec

import (
	"errors"
	"math/big"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrInvalidPrivateKey reports a scalar outside the valid range [1, n).
var ErrInvalidPrivateKey = errors.New("ec: scalar not in [1, n)")

// ErrPointAtInfinity reports a derivation that produced the identity
// point.
var ErrPointAtInfinity = errors.New("ec: point is infinity")

var (
	curveP *big.Int
	curveN *big.Int
	curveA *big.Int
	curveB *big.Int
	curveG Point
)

// CurveParams is the immutable (p, a, b, Gx, Gy, n, byte_length) tuple
// for secp256k1, initialized once and read-only thereafter.
type CurveParams struct {
	P          *big.Int
	A          *big.Int
	B          *big.Int
	Gx, Gy     *big.Int
	N          *big.Int
	ByteLength int
}

func init() {
	curveP, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	curveN, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	curveA = big.NewInt(0)
	curveB = big.NewInt(7)

	gx, _ := new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	gy, _ := new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
	curveG = Point{X: gx, Y: gy}
}

// Secp256k1 returns the baked-in curve parameters.
func Secp256k1() CurveParams {
	return CurveParams{
		P: curveP, A: curveA, B: curveB,
		Gx: curveG.X, Gy: curveG.Y,
		N: curveN, ByteLength: 32,
	}
}

// Generator returns the base point G.
func Generator() Point { return curveG }

// Order returns the curve order n.
func Order() *big.Int { return new(big.Int).Set(curveN) }

// ValidateScalar checks 0 < k < n, the private-key validity rule
// applied before any derived key is accepted.
func ValidateScalar(k *big.Int) error {
	if k.Sign() <= 0 || k.Cmp(curveN) >= 0 {
		return ErrInvalidPrivateKey
	}
	return nil
}

// SerializeCompressedPoint returns the 33-byte SEC1 compressed form:
// tag (0x02 even Y, 0x03 odd Y) || 32-byte big-endian X.
func SerializeCompressedPoint(p Point) []byte {
	out := make([]byte, 33)
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}

	xBytes := p.X.Bytes()
	copy(out[1+32-len(xBytes):], xBytes)
	return out
}

// ParseCompressedPoint decodes a 33-byte SEC1 compressed point and
// recovers Y via the curve equation, delegating the square-root-mod-p
// work and on-curve/subgroup validation to decred's ParsePubKey — the
// one place in this package that validates attacker-controlled bytes
// rather than computing with already-trusted scalars and points.
func ParseCompressedPoint(b []byte) (Point, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return Point{}, err
	}

	var j secp256k1.JacobianPoint
	pub.AsJacobian(&j)
	return fromJacobian(&j), nil
}

func fromJacobian(j *secp256k1.JacobianPoint) Point {
	if j.Z.IsZero() {
		return Infinity()
	}

	j.ToAffine()
	xBytes := j.X.Bytes()
	yBytes := j.Y.Bytes()
	return Point{X: new(big.Int).SetBytes(xBytes[:]), Y: new(big.Int).SetBytes(yBytes[:])}
}

// SerializePrivateKeyBytes returns the 33-byte SEC1 form used inside
// BIP32 key material: 0x00 || 32-byte big-endian scalar.
func SerializePrivateKeyBytes(k *big.Int) []byte {
	out := make([]byte, 33)
	kb := k.Bytes()
	copy(out[1+32-len(kb):], kb)
	return out
}

// Package ec implements affine elliptic-curve point arithmetic over
// secp256k1, built directly on this module's bigint layer: point
// addition and doubling compute their slope via bigint.ModInverse
// (with bigint.Signed.Reduce canonicalizing the subtractions that feed
// it), and scalar multiplication is double-and-add driven by
// bits.FirstHighBitIndex locating the scalar's top set bit — the same
// modular-inverse-plus-square-and-multiply shape the rest of this
// module's derivation math uses.
//
// Parsing untrusted, externally-supplied compressed points
// (ParseCompressedPoint, in secp256k1.go) is the one place this
// package still delegates to
// github.com/decred/dcrd/dcrec/secp256k1/v4: ParsePubKey performs full
// on-curve and subgroup validation of attacker-controlled bytes, which
// a bare modular-square-root reimplementation would not get for free.
package ec

import (
	"math/big"

	"github.com/coldkey/walletcore/bigint"
	"github.com/coldkey/walletcore/bits"
)

// Point is an affine point on the curve. The sentinel (0, 0) represents
// the additive identity ("infinity"); no real secp256k1 point has both
// coordinates zero, so the sentinel is unambiguous.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Infinity returns the identity point.
func Infinity() Point {
	return Point{X: new(big.Int), Y: new(big.Int)}
}

// IsInfinity reports whether p is the identity sentinel.
func (p Point) IsInfinity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Negate returns -p (flips the sign of Y modulo the field prime).
func (p Point) Negate() Point {
	if p.IsInfinity() {
		return p
	}

	return Point{X: new(big.Int).Set(p.X), Y: subMod(curveP, p.Y, curveP)}
}

func toU(x *big.Int) *bigint.Unsigned   { return bigint.FromBigEndianBytes(x.Bytes()) }
func toBig(u *bigint.Unsigned) *big.Int { return new(big.Int).SetBytes(u.ToBigEndianBytes()) }

// addMod returns (a+b) mod m.
func addMod(a, b, m *big.Int) *big.Int {
	sum := bigint.NewUnsigned().Add(toU(a), toU(b))
	r := bigint.NewUnsigned()
	r.Modulo(sum, toU(m))
	return toBig(r)
}

// subMod returns (a-b) mod m, routing through bigint.Signed so a
// negative difference still canonicalizes into [0, m).
func subMod(a, b, m *big.Int) *big.Int {
	au, bu, mu := toU(a), toU(b), toU(m)

	var s *bigint.Signed
	if au.Cmp(bu) >= 0 {
		s = bigint.FromUnsigned(false, bigint.NewUnsigned().Subtract(au, bu))
	} else {
		s = bigint.FromUnsigned(true, bigint.NewUnsigned().Subtract(bu, au))
	}

	return toBig(s.Reduce(mu))
}

// mulMod returns (a*b) mod m.
func mulMod(a, b, m *big.Int) *big.Int {
	prod := bigint.NewUnsigned().Multiply(toU(a), toU(b))
	r := bigint.NewUnsigned()
	r.Modulo(prod, toU(m))
	return toBig(r)
}

// sqrMod returns a^2 mod m via bigint.ModPow, the square-and-multiply
// entry point the point-doubling/addition formulas below reuse instead
// of a dedicated squaring routine.
func sqrMod(a, m *big.Int) *big.Int {
	r, ok := bigint.ModPow(toU(a), bigint.FromBigEndianBytes([]byte{2}), toU(m))
	if !ok {
		panic("ec: modulus must be non-zero")
	}
	return toBig(r)
}

// invMod returns a^-1 mod m via bigint.ModInverse, or false if a and m
// share a common factor.
func invMod(a, m *big.Int) (*big.Int, bool) {
	inv, ok := bigint.ModInverse(toU(a), toU(m))
	if !ok {
		return nil, false
	}
	return toBig(inv), true
}

// Add computes p + q using the identity rules (∞+P=P, P+∞=P,
// P+(-P)=∞) before falling through to the general addition formula
// slope = (y2-y1) * inverse(x2-x1) mod p; a request to add a point to
// itself is routed to Double.
func Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) != 0 {
			return Infinity()
		}
		return Double(p)
	}

	num := subMod(q.Y, p.Y, curveP)
	den := subMod(q.X, p.X, curveP)
	denInv, ok := invMod(den, curveP)
	if !ok {
		// den can only be a multiple of curveP if p.X == q.X, already
		// ruled out above.
		return Infinity()
	}
	lambda := mulMod(num, denInv, curveP)

	x3 := subMod(subMod(sqrMod(lambda, curveP), p.X, curveP), q.X, curveP)
	y3 := subMod(mulMod(lambda, subMod(p.X, x3, curveP), curveP), p.Y, curveP)
	return Point{X: x3, Y: y3}
}

// Double computes p + p via the tangent-slope formula slope = (3x^2 +
// a) * inverse(2y) mod p (a = 0 for secp256k1).
func Double(p Point) Point {
	if p.IsInfinity() {
		return p
	}

	threeX2 := mulMod(big.NewInt(3), sqrMod(p.X, curveP), curveP)
	twoY := addMod(p.Y, p.Y, curveP)
	twoYInv, ok := invMod(twoY, curveP)
	if !ok {
		// 2y ≡ 0 mod p only at a 2-torsion point; secp256k1 has none
		// besides infinity, but report it rather than divide by zero.
		return Infinity()
	}
	lambda := mulMod(threeX2, twoYInv, curveP)

	x3 := subMod(subMod(sqrMod(lambda, curveP), p.X, curveP), p.X, curveP)
	y3 := subMod(mulMod(lambda, subMod(p.X, x3, curveP), curveP), p.Y, curveP)
	return Point{X: x3, Y: y3}
}

// ScalarMultiply computes k*p via double-and-add: bits.FirstHighBitIndex
// locates the scalar's most significant set bit, then the loop doubles
// the running result every step and adds p whenever the corresponding
// bit is set, walking down to the least significant bit.
func ScalarMultiply(k *big.Int, p Point) Point {
	kBytes := k.Bytes()
	top := bits.FirstHighBitIndex(kBytes)
	if top < 0 {
		return Infinity()
	}

	result := Infinity()
	totalBits := len(kBytes) * 8
	for i := top; i < totalBits; i++ {
		result = Double(result)
		if bits.BitAt(kBytes, i) {
			result = Add(result, p)
		}
	}
	return result
}

// ScalarBaseMultiply computes k*G, the generator-point multiplication
// used for private-to-public key conversion.
func ScalarBaseMultiply(k *big.Int) Point {
	return ScalarMultiply(k, curveG)
}

// PointMultiplicationContext carries scratch coordinate storage that
// every Multiply/MultiplyBase call on the same context writes its result
// into, so Zero can clear a secret-derived point in one place. The bip32
// call sites (Key.PublicPoint, CKDPub) construct a fresh context per
// derivation step and zero it before returning.
type PointMultiplicationContext struct {
	accX, accY *big.Int
}

// NewPointMultiplicationContext returns a reusable scalar-multiplication
// context for a derivation chain.
func NewPointMultiplicationContext() *PointMultiplicationContext {
	return &PointMultiplicationContext{accX: new(big.Int), accY: new(big.Int)}
}

// Multiply computes k*p, storing the result in the context's scratch
// coordinates and returning a Point backed by them.
func (c *PointMultiplicationContext) Multiply(k *big.Int, p Point) Point {
	result := ScalarMultiply(k, p)
	c.accX.Set(result.X)
	c.accY.Set(result.Y)
	return Point{X: c.accX, Y: c.accY}
}

// MultiplyBase computes k*G through the same reused scratch storage as
// Multiply.
func (c *PointMultiplicationContext) MultiplyBase(k *big.Int) Point {
	return c.Multiply(k, curveG)
}

// Zero clears the context's scratch coordinates so a secret-derived
// point does not linger between derivation steps.
func (c *PointMultiplicationContext) Zero() {
	c.accX.SetInt64(0)
	c.accY.SetInt64(0)
}

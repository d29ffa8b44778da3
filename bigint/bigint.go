// Package bigint provides the arbitrary-precision arithmetic used across
// the wallet core: modular exponentiation for the EC layer's field squaring
// and the extended-Euclidean modular inverse used wherever a field
// element must be divided.
//
// Mutation happens in place wherever a secret value needs deterministic
// clearing (see Unsigned.Zero), but the digit representation itself is
// math/big.Int: every Go library that does BIP32/secp256k1 work
// (tyler-smith/go-bip32, decred's dcrec) stores its generic integers in
// math/big rather than a hand-rolled digit vector, and reimplementing
// base-256 schoolbook arithmetic here would just re-derive what
// math/big already does correctly and fast. See DESIGN.md for the full
// justification.
package bigint

import (
	"errors"
	"math/big"
)

// ErrNumericDomain covers divide-by-zero, mod-inverse of non-coprime
// inputs, and other numeric domain errors.
var ErrNumericDomain = errors.New("bigint: numeric domain error")

// Unsigned is a non-negative arbitrary-precision integer that exposes
// in-place mutation so callers can reuse one buffer across a derivation
// chain and zero it deterministically when the secret it holds is no
// longer needed.
type Unsigned struct {
	v *big.Int
}

// NewUnsigned returns a zero-valued Unsigned.
func NewUnsigned() *Unsigned {
	return &Unsigned{v: new(big.Int)}
}

// FromBigEndianBytes decodes a big-endian byte slice into a new Unsigned.
func FromBigEndianBytes(b []byte) *Unsigned {
	return &Unsigned{v: new(big.Int).SetBytes(b)}
}

// ToBigEndianBytes returns the canonical big-endian encoding with no
// leading zero bytes (the empty slice represents zero).
func (u *Unsigned) ToBigEndianBytes() []byte {
	return u.v.Bytes()
}

// ToFixedBigEndianBytes returns a big-endian encoding left-padded with
// zeros to exactly size bytes. It panics if the value does not fit,
// mirroring the fixed-width serialization BIP32 and EC point encoding
// both require.
func (u *Unsigned) ToFixedBigEndianBytes(size int) []byte {
	raw := u.v.Bytes()
	if len(raw) > size {
		panic("bigint: value does not fit in requested byte width")
	}

	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out
}

// SetEqualTo copies other's value into u.
func (u *Unsigned) SetEqualTo(other *Unsigned) *Unsigned {
	u.v.Set(other.v)
	return u
}

// Zero fills the receiver with the value zero. This is not a
// memory-scrubbing primitive (math/big does not expose one) — it
// overwrites the logical value so the previous secret is no longer
// reachable through this handle, matching how decred's ModNScalar.Zero
// reinitializes rather than wipes its backing array.
func (u *Unsigned) Zero() {
	u.v.SetInt64(0)
}

func (u *Unsigned) One() {
	u.v.SetInt64(1)
}

func (u *Unsigned) IsZero() bool     { return u.v.Sign() == 0 }
func (u *Unsigned) IsOne() bool      { return u.v.Cmp(big.NewInt(1)) == 0 }
func (u *Unsigned) IsNonZero() bool  { return u.v.Sign() != 0 }
func (u *Unsigned) IsEven() bool     { return u.v.Bit(0) == 0 }
func (u *Unsigned) BitLength() int   { return u.v.BitLen() }
func (u *Unsigned) Cmp(o *Unsigned) int { return u.v.Cmp(o.v) }

// Add computes u = a + b in place.
func (u *Unsigned) Add(a, b *Unsigned) *Unsigned {
	u.v.Add(a.v, b.v)
	return u
}

// Subtract computes u = a - b in place. Callers must ensure a >= b;
// Unsigned has no negative representation (see Signed for that).
func (u *Unsigned) Subtract(a, b *Unsigned) *Unsigned {
	u.v.Sub(a.v, b.v)
	if u.v.Sign() < 0 {
		panic("bigint: unsigned subtraction underflow")
	}
	return u
}

// Multiply computes u = a * b in place.
func (u *Unsigned) Multiply(a, b *Unsigned) *Unsigned {
	u.v.Mul(a.v, b.v)
	return u
}

// DivideWithRemainder computes quotient = a / b, remainder = a % b.
// Returns false (instead of panicking) when b is zero, so callers can
// surface a domain error rather than crash.
func DivideWithRemainder(a, b, quotient, remainder *Unsigned) bool {
	if b.IsZero() {
		return false
	}

	quotient.v.QuoRem(a.v, b.v, remainder.v)
	return true
}

// Modulo reduces u = a mod m in place.
func (u *Unsigned) Modulo(a, m *Unsigned) bool {
	if m.IsZero() {
		return false
	}

	u.v.Mod(a.v, m.v)
	return true
}

// ModPow computes value^exp mod m via square-and-multiply, iterating
// from the most significant bit of exp downward. math/big's Exp
// implements the same algorithm; we call through to it rather than
// hand-rolling the bit loop, since a hand loop would not be observably
// different.
func ModPow(value, exp, m *Unsigned) (*Unsigned, bool) {
	if m.IsZero() {
		return nil, false
	}

	return &Unsigned{v: new(big.Int).Exp(value.v, exp.v, m.v)}, true
}

// ModInverse performs the extended Euclidean algorithm to find x such
// that value*x ≡ 1 (mod m). mod=0 returns false; mod=1 returns
// (0, true); gcd(value, m) != 1 returns false.
func ModInverse(value *Unsigned, mod *Unsigned) (*Unsigned, bool) {
	if mod.IsZero() {
		return nil, false
	}
	if mod.IsOne() {
		return NewUnsigned(), true
	}

	result := new(big.Int).ModInverse(value.v, mod.v)
	if result == nil {
		return nil, false
	}

	return &Unsigned{v: result}, true
}

// Signed wraps Unsigned with an explicit sign; the sign of zero is
// always canonicalized positive.
type Signed struct {
	negative bool
	mag      *Unsigned
}

func NewSigned() *Signed {
	return &Signed{mag: NewUnsigned()}
}

func FromUnsigned(negative bool, mag *Unsigned) *Signed {
	s := &Signed{negative: negative && mag.IsNonZero(), mag: mag}
	return s
}

func (s *Signed) IsZero() bool  { return s.mag.IsZero() }
func (s *Signed) IsNegative() bool { return s.negative }
func (s *Signed) Magnitude() *Unsigned { return s.mag }

func (s *Signed) Negate() {
	if s.mag.IsNonZero() {
		s.negative = !s.negative
	}
}

func (s *Signed) Zero() {
	s.mag.Zero()
	s.negative = false
}

func (s *Signed) SetEqualTo(o *Signed) *Signed {
	s.mag.SetEqualTo(o.mag)
	s.negative = o.negative
	return s
}

// Cmp orders signed values the normal way: negative < zero < positive,
// magnitude compared when signs match.
func (s *Signed) Cmp(o *Signed) int {
	switch {
	case s.negative && !o.negative:
		return -1
	case !s.negative && o.negative:
		return 1
	case s.negative:
		return -s.mag.Cmp(o.mag)
	default:
		return s.mag.Cmp(o.mag)
	}
}

// Reduce computes a non-negative representative of s modulo m (always
// in [0, m)), which is what EC field arithmetic needs after every
// subtraction that might have gone negative.
func (s *Signed) Reduce(m *Unsigned) *Unsigned {
	r := new(big.Int)
	mb := m.v
	sv := s.mag.v
	if s.negative {
		sv = new(big.Int).Neg(sv)
	}
	r.Mod(sv, mb)
	return &Unsigned{v: r}
}

// Package group implements the prime-order group substrate the ring
// signature schemes in this module are defined over: Ristretto255, a
// cofactor-1 group built on top of the edwards25519 curve. This package is
// the external collaborator described by the CLSAG/TRS specification —
// scalars and points with constant-time arithmetic and hash-to-point — and
// is the only place in the module that imports the underlying curve
// libraries directly.
package group

import (
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

// ScalarLen is the length, in bytes, of a canonically-encoded Scalar.
const ScalarLen = 32

// PointLen is the length, in bytes, of a compressed Point.
const PointLen = 32

// Scalar is an element of the Ristretto255 scalar field.
type Scalar struct {
	s *ristretto255.Scalar
}

// Point is an element of the Ristretto255 group.
type Point struct {
	p *ristretto255.Element
}

// NewScalar returns the zero scalar.
func NewScalar() Scalar {
	return Scalar{ristretto255.NewScalar()}
}

// RandomScalar draws a uniformly random scalar using the provided
// cryptographically-secure RNG. The RNG is borrowed for the duration of this
// call only.
func RandomScalar(rng io.Reader) (Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return Scalar{}, fmt.Errorf("group: reading randomness: %w", err)
	}
	s := ristretto255.NewScalar().FromUniformBytes(wide[:])
	return Scalar{s}, nil
}

// ScalarFromWideBytes reduces a 64-byte wide hash output into a scalar
// modulo the group order. This is the "wide reduction" operation required
// by the TRS hash adapter.
func ScalarFromWideBytes(wide []byte) Scalar {
	s := ristretto255.NewScalar().FromUniformBytes(wide)
	return Scalar{s}
}

// ScalarFromWideHash reduces the 64-byte output of a wide hash.Hash into a
// scalar. It is a convenience wrapper around ScalarFromWideBytes for
// hash.Hash-shaped inputs such as a finalized Blake2b-512 digest.
func ScalarFromWideHash(digest []byte) Scalar {
	return ScalarFromWideBytes(digest)
}

// ScalarFromCanonicalBytes decodes a 32-byte canonical scalar encoding. It
// returns an error, rather than panicking, if the bytes do not represent a
// value strictly less than the group order.
func ScalarFromCanonicalBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarLen {
		return Scalar{}, fmt.Errorf("group: scalar must be %d bytes, got %d", ScalarLen, len(b))
	}
	s := ristretto255.NewScalar()
	if err := s.Decode(b); err != nil {
		return Scalar{}, fmt.Errorf("group: non-canonical scalar encoding: %w", err)
	}
	return Scalar{s}, nil
}

// ScalarFromUint64 encodes a small non-negative integer as a scalar. Used
// for TRS's "index as a scalar" (i+1) convention.
func ScalarFromUint64(v uint64) Scalar {
	var wide [64]byte
	for i := 0; i < 8; i++ {
		wide[i] = byte(v >> (8 * i))
	}
	return ScalarFromWideBytes(wide[:])
}

// Add returns a+b.
func (a Scalar) Add(b Scalar) Scalar {
	return Scalar{ristretto255.NewScalar().Add(a.s, b.s)}
}

// Sub returns a-b.
func (a Scalar) Sub(b Scalar) Scalar {
	return Scalar{ristretto255.NewScalar().Subtract(a.s, b.s)}
}

// Multiply returns a*b.
func (a Scalar) Multiply(b Scalar) Scalar {
	return Scalar{ristretto255.NewScalar().Multiply(a.s, b.s)}
}

// Negate returns -a.
func (a Scalar) Negate() Scalar {
	return Scalar{ristretto255.NewScalar().Negate(a.s)}
}

// Invert returns a^-1. a must be non-zero; the zero scalar has no inverse
// and the result is undefined (matches the underlying field semantics).
func (a Scalar) Invert() Scalar {
	return Scalar{ristretto255.NewScalar().Invert(a.s)}
}

// Equal reports whether a and b represent the same scalar.
func (a Scalar) Equal(b Scalar) bool {
	return a.s.Equal(b.s) == 1
}

// IsZero reports whether a is the additive identity.
func (a Scalar) IsZero() bool {
	return a.Equal(NewScalar())
}

// Bytes returns the canonical 32-byte little-endian encoding of a.
func (a Scalar) Bytes() []byte {
	return a.s.Encode(make([]byte, 0, ScalarLen))
}

// Base returns the fixed group generator G.
func Base() Point {
	return Point{ristretto255.NewElement().Base()}
}

// Identity returns the group identity element.
func Identity() Point {
	return Point{ristretto255.NewElement().Zero()}
}

// HashToPoint maps arbitrary bytes to a point in the prime-order group via
// SHA-512 wide reduction, mirroring `RistrettoPoint::hash_from_bytes::<Sha512>`
// from the original source this scheme is grounded on.
func HashToPoint(data ...[]byte) Point {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	return HashToPointFromWide(h.Sum(nil))
}

// HashToPointFromWide maps an already-produced 64-byte wide hash output
// (e.g. the finalized state of a keyed Blake2b-512 instance) to a point in
// the prime-order subgroup. Used by the TRS domain hashes, which finalize
// their own extendable hash rather than SHA-512.
func HashToPointFromWide(wide []byte) Point {
	return Point{ristretto255.NewElement().FromUniformBytes(wide)}
}

// PointFromCompressedBytes decompresses a 32-byte encoding, validating that
// it represents a point in the prime-order subgroup. It returns an error,
// rather than panicking, on malformed input.
func PointFromCompressedBytes(b []byte) (Point, error) {
	if len(b) != PointLen {
		return Point{}, fmt.Errorf("group: point must be %d bytes, got %d", PointLen, len(b))
	}
	p := ristretto255.NewElement()
	if err := p.Decode(b); err != nil {
		return Point{}, fmt.Errorf("group: invalid point encoding: %w", err)
	}
	return Point{p}, nil
}

// Add returns a+b.
func (a Point) Add(b Point) Point {
	return Point{ristretto255.NewElement().Add(a.p, b.p)}
}

// Sub returns a-b.
func (a Point) Sub(b Point) Point {
	return Point{ristretto255.NewElement().Subtract(a.p, b.p)}
}

// ScalarMult returns s*a (variable-base scalar multiplication).
func (a Point) ScalarMult(s Scalar) Point {
	return Point{ristretto255.NewElement().ScalarMult(s.s, a.p)}
}

// ScalarBaseMult returns s*G (fixed-base scalar multiplication).
func ScalarBaseMult(s Scalar) Point {
	return Point{ristretto255.NewElement().ScalarBaseMult(s.s)}
}

// Equal reports whether a and b represent the same point.
func (a Point) Equal(b Point) bool {
	return a.p.Equal(b.p) == 1
}

// Bytes returns the 32-byte compressed encoding of a.
func (a Point) Bytes() []byte {
	return a.p.Encode(make([]byte, 0, PointLen))
}

// MultiScalarMult computes the sum of scalars[i]*points[i]. It panics if the
// two slices differ in length, mirroring the precondition violation the
// caller is responsible for avoiding (this is a public, variable-time
// operation over public data — see the timing contract in §5).
func MultiScalarMult(scalars []Scalar, points []Point) Point {
	if len(scalars) != len(points) {
		panic("group: MultiScalarMult: scalars/points length mismatch")
	}
	rs := make([]*ristretto255.Scalar, len(scalars))
	rp := make([]*ristretto255.Element, len(points))
	for i := range scalars {
		rs[i] = scalars[i].s
		rp[i] = points[i].p
	}
	return Point{ristretto255.NewElement().VarTimeMultiScalarMult(rs, rp)}
}

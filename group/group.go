package group

import (
	"errors"
	"io"
)

var (
	// ErrAffineConversion is returned when a point has no affine
	// representative, typically the identity of a short Weierstrass curve.
	ErrAffineConversion = errors.New("group: point has no affine coordinates")

	// ErrNotOnCurve is returned when coordinates do not describe a point
	// of the prime-order group.
	ErrNotOnCurve = errors.New("group: coordinates do not describe a group element")
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as exponents in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetUint64 sets the receiver to v mod order and returns it.
	SetUint64(v uint64) Scalar
	// Bytes returns the canonical fixed-width big-endian encoding.
	Bytes() []byte
	// SetBytes interprets data as a big-endian integer of any length,
	// reduces it modulo the group order, and stores it in the receiver.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of a cryptographic group, typically a point
// on an elliptic curve. Points support addition, subtraction, negation,
// and scalar multiplication.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency.
//
// The identity element (zero point, point at infinity) is the additive
// identity: P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical byte representation of the point.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data is invalid or out of range.
	SetBytes(data []byte) (Point, error)
	// Coordinates returns the unique affine representative (x, y), each
	// coordinate fixed-width big-endian. Two internal representations of
	// the same element always yield identical output. Returns
	// ErrAffineConversion if the point has no affine form.
	Coordinates() (x, y []byte, err error)
	// SetCoordinates sets the receiver from affine coordinates and returns
	// it. Returns ErrNotOnCurve if (x, y) is not a group element.
	SetCoordinates(x, y []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a prime-order group together with its scalar field. It
// provides factory methods for creating scalars and points, access to the
// group's generator, and uniform sampling from a caller-supplied source
// of randomness.
//
// A Group implementation encapsulates all curve-specific details, allowing
// the ElGamal scheme to be generic over different elliptic curves.
//
// Example usage:
//
//	g := bn254.New()
//	scalar, _ := g.RandomScalar(rand.Reader)
//	point := g.NewPoint().ScalarMult(scalar, g.Generator())
type Group interface {
	// Name returns a short identifier such as "bn254".
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
	// RandomPoint returns a uniformly random group element read from r.
	RandomPoint(r io.Reader) (Point, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
	// CoordinateSize is the width in bytes of one affine coordinate.
	CoordinateSize() int
}

package bn254

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/elgamal-bn/group"
)

// randomBytes is the number of bytes read per random scalar. Reducing a
// 512-bit value keeps the bias from the modular reduction negligible.
const randomBytes = 64

var (
	g1Gen   bn254.G1Jac
	frOrder *big.Int
)

func init() {
	g1Gen, _, _, _ = bn254.Generators()
	frOrder = fr.Modulus()
}

// Scalar represents an element of the BN254 scalar field Fr.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element,
// which is always kept reduced modulo the group order.
type Scalar struct {
	inner fr.Element
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.inner.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a big-endian byte slice of any length and
// returns s. The value is reduced modulo the group order.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner.SetBytes(data)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// Point represents an element of the BN254 G1 group.
// It implements [group.Point] by wrapping gnark-crypto's G1Jac.
//
// Points are kept in Jacobian coordinates (X, Y, Z); the identity is
// any point with Z = 0. Use Coordinates to obtain the affine form.
type Point struct {
	inner bn254.G1Jac
}

func newIdentity() *Point {
	var p Point
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	p.inner.Z.SetZero()
	return &p
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	var sum bn254.G1Jac
	sum.Set(&a.(*Point).inner)
	sum.AddAssign(&b.(*Point).inner)
	p.inner.Set(&sum)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var diff bn254.G1Jac
	diff.Set(&a.(*Point).inner)
	diff.SubAssign(&b.(*Point).inner)
	p.inner.Set(&diff)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	if scalar.inner.IsZero() || qPoint.IsIdentity() {
		p.inner.Set(&newIdentity().inner)
		return p
	}
	var prod bn254.G1Jac
	prod.ScalarMultiplication(&qPoint.inner, scalar.bigInt())
	p.inner.Set(&prod)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the compressed 32-byte affine encoding of p.
func (p *Point) Bytes() []byte {
	var aff bn254.G1Affine
	aff.FromJacobian(&p.inner)
	b := aff.Bytes()
	return b[:]
}

// SetBytes sets p from a compressed or uncompressed affine encoding and
// returns p. Returns an error if the data does not represent a point of G1.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	var aff bn254.G1Affine
	if _, err := aff.SetBytes(data); err != nil {
		return nil, err
	}
	if aff.IsInfinity() {
		p.inner.Set(&newIdentity().inner)
		return p, nil
	}
	p.inner.FromAffine(&aff)
	return p, nil
}

// Coordinates returns the affine (x, y) of p as two 32-byte big-endian
// base field elements. The identity has no affine form on a short
// Weierstrass curve, so it returns [group.ErrAffineConversion].
func (p *Point) Coordinates() (x, y []byte, err error) {
	if p.IsIdentity() {
		return nil, nil, group.ErrAffineConversion
	}
	var aff bn254.G1Affine
	aff.FromJacobian(&p.inner)
	xb := aff.X.Bytes()
	yb := aff.Y.Bytes()
	return xb[:], yb[:], nil
}

// SetCoordinates sets p from 32-byte big-endian affine coordinates and
// returns p. Non-canonical field elements and points off the curve are
// rejected with [group.ErrNotOnCurve].
func (p *Point) SetCoordinates(x, y []byte) (group.Point, error) {
	var aff bn254.G1Affine
	if err := aff.X.SetBytesCanonical(x); err != nil {
		return nil, group.ErrNotOnCurve
	}
	if err := aff.Y.SetBytesCanonical(y); err != nil {
		return nil, group.ErrNotOnCurve
	}
	if aff.IsInfinity() || !aff.IsOnCurve() || !aff.IsInSubGroup() {
		return nil, group.ErrNotOnCurve
	}
	p.inner.FromAffine(&aff)
	return p, nil
}

// Equal reports whether p and b represent the same group element,
// regardless of their Jacobian representatives.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// G1 implements [group.Group] for the G1 group of BN254 (alt_bn128),
// the curve exposed by the Ethereum ecAdd/ecMul precompiles.
//
// G1 is a zero-sized type. Create an instance with New or &G1{}.
type G1 struct{}

// New returns the BN254 G1 group.
func New() *G1 {
	return &G1{}
}

// Name returns "bn254".
func (g *G1) Name() string {
	return "bn254"
}

// NewScalar returns a new scalar initialized to zero.
func (g *G1) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint returns a new point initialized to the point at infinity.
func (g *G1) NewPoint() group.Point {
	return newIdentity()
}

// Generator returns the standard G1 generator (1, 2).
func (g *G1) Generator() group.Point {
	var p Point
	p.inner.Set(&g1Gen)
	return &p
}

// RandomScalar generates a random scalar using the provided random
// source. The result is uniformly distributed in [0, order).
func (g *G1) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [randomBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := &Scalar{}
	s.inner.SetBytes(buf[:])
	return s, nil
}

// RandomPoint returns k*G for a random scalar k read from r.
func (g *G1) RandomPoint(r io.Reader) (group.Point, error) {
	k, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return g.NewPoint().ScalarMult(k, g.Generator()), nil
}

// Order returns the order of G1 (the Fr modulus) as a big-endian byte slice.
func (g *G1) Order() []byte {
	return frOrder.Bytes()
}

// CoordinateSize returns the byte width of a base field element.
func (g *G1) CoordinateSize() int {
	return fp.Bytes
}

package elgamal

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/elgamal-bn/group"
)

// Scheme binds a group to the transcript hash used for decryption proofs.
// All keys, ciphertexts and proofs created through a Scheme refer back to
// it; values from different schemes must not be mixed.
type Scheme struct {
	group  group.Group
	hasher Hasher
}

// New creates a Scheme over g. If h is nil, Keccak-256 is used so that
// proofs can be checked by a Solidity verifier.
func New(g group.Group, h Hasher) (*Scheme, error) {
	if g == nil {
		return nil, errors.New("elgamal: group must not be nil")
	}
	if h == nil {
		h = &Keccak256Hasher{}
	}
	return &Scheme{
		group:  g,
		hasher: h,
	}, nil
}

// Group returns the underlying group.
func (s *Scheme) Group() group.Group {
	return s.group
}

// Hasher returns the transcript hasher.
func (s *Scheme) Hasher() Hasher {
	return s.hasher
}

// SecretKey is an ElGamal secret scalar x. It never leaves the process
// through any encoding in this package, and its String form is redacted.
type SecretKey struct {
	scheme *Scheme
	x      group.Scalar
	public *PublicKey
}

// NewSecretKey samples a uniformly random secret key from r.
func (s *Scheme) NewSecretKey(r io.Reader) (*SecretKey, error) {
	x, err := s.group.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("sample secret key: %w", err)
	}
	return &SecretKey{
		scheme: s,
		x:      x,
		public: &PublicKey{
			scheme: s,
			point:  s.group.NewPoint().ScalarMult(x, s.group.Generator()),
		},
	}, nil
}

// SecretKeyFromScalar wraps an existing secret scalar, for example a
// key share produced by distributed key generation. The scalar is copied
// and must be non-zero.
func (s *Scheme) SecretKeyFromScalar(x group.Scalar) (*SecretKey, error) {
	if x == nil || x.IsZero() {
		return nil, ErrZeroScalar
	}
	xc := s.group.NewScalar().Set(x)
	return &SecretKey{
		scheme: s,
		x:      xc,
		public: &PublicKey{
			scheme: s,
			point:  s.group.NewPoint().ScalarMult(xc, s.group.Generator()),
		},
	}, nil
}

// Clone returns an independent copy of sk. Zeroizing one copy leaves the
// other usable. A zeroized key cannot be cloned.
func (sk *SecretKey) Clone() (*SecretKey, error) {
	return sk.scheme.SecretKeyFromScalar(sk.x)
}

// PublicKey returns x*G.
func (sk *SecretKey) PublicKey() *PublicKey {
	return sk.public
}

// Scheme returns the scheme the key belongs to.
func (sk *SecretKey) Scheme() *Scheme {
	return sk.scheme
}

// Decrypt returns Masked - x*Ephemeral. A ciphertext formed under a
// different public key decrypts to an unrelated point; no error is
// reported because the result is algebraically well defined.
func (sk *SecretKey) Decrypt(ct *Ciphertext) group.Point {
	g := sk.scheme.group
	shared := g.NewPoint().ScalarMult(sk.x, ct.ephemeral)
	return g.NewPoint().Sub(ct.masked, shared)
}

// Zeroize overwrites the secret scalar. The key must not be used
// afterwards. Go gives no guarantee that earlier copies made by the
// runtime are cleared.
func (sk *SecretKey) Zeroize() {
	if sk.x != nil {
		sk.x.SetUint64(0)
	}
}

// String implements fmt.Stringer without revealing the scalar.
func (sk *SecretKey) String() string {
	return "elgamal.SecretKey([redacted])"
}

// GoString implements fmt.GoStringer without revealing the scalar.
func (sk *SecretKey) GoString() string {
	return sk.String()
}

// PublicKey is an ElGamal public key Y = x*G.
type PublicKey struct {
	scheme *Scheme
	point  group.Point
}

// PublicKeyFromPoint wraps an existing group element as a public key.
// The point is copied.
func (s *Scheme) PublicKeyFromPoint(p group.Point) *PublicKey {
	return &PublicKey{
		scheme: s,
		point:  s.group.NewPoint().Set(p),
	}
}

// Scheme returns the scheme the key belongs to.
func (pk *PublicKey) Scheme() *Scheme {
	return pk.scheme
}

// Point returns a copy of the public key point.
func (pk *PublicKey) Point() group.Point {
	return pk.scheme.group.NewPoint().Set(pk.point)
}

// AffineCoordinates returns the affine (x, y) of the key point.
func (pk *PublicKey) AffineCoordinates() (x, y []byte, err error) {
	return pk.point.Coordinates()
}

// Equal reports whether pk and other hold the same point in the same group.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == nil || other == nil {
		return pk == other
	}
	if pk.scheme.group.Name() != other.scheme.group.Name() {
		return false
	}
	return pk.point.Equal(other.point)
}

// Encrypt encrypts plaintext with fresh randomness read from r:
//
//	Ephemeral = k*G
//	Masked    = plaintext + k*Y
//
// Reusing k across two encryptions under the same key reveals the
// difference of the plaintexts, so r must never repeat its output.
func (pk *PublicKey) Encrypt(r io.Reader, plaintext group.Point) (*Ciphertext, error) {
	g := pk.scheme.group
	k, err := g.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("sample encryption randomness: %w", err)
	}
	mask := g.NewPoint().ScalarMult(k, pk.point)
	return &Ciphertext{
		pk:        pk,
		ephemeral: g.NewPoint().ScalarMult(k, g.Generator()),
		masked:    g.NewPoint().Add(plaintext, mask),
	}, nil
}

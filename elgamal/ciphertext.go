package elgamal

import (
	"github.com/f3rmion/elgamal-bn/group"
)

// Ciphertext is an ElGamal ciphertext (Ephemeral, Masked) together with
// the public key it was formed under.
//
// Ciphertexts are additively homomorphic: Add, Subtract, Scale and
// Unscale act on the encrypted plaintexts. Combining two ciphertexts
// formed under different keys is a caller error; the result is well
// formed but decrypts to nothing meaningful. Every operation returns a
// new Ciphertext and leaves its operands untouched.
type Ciphertext struct {
	pk        *PublicKey
	ephemeral group.Point // k*G
	masked    group.Point // plaintext + k*Y
}

// NewCiphertext assembles a ciphertext from its components, for example
// after decoding them from an external representation. The points are copied.
func NewCiphertext(pk *PublicKey, ephemeral, masked group.Point) *Ciphertext {
	g := pk.scheme.group
	return &Ciphertext{
		pk:        pk,
		ephemeral: g.NewPoint().Set(ephemeral),
		masked:    g.NewPoint().Set(masked),
	}
}

// PublicKey returns the key the ciphertext was formed under.
func (ct *Ciphertext) PublicKey() *PublicKey {
	return ct.pk
}

// Ephemeral returns a copy of k*G.
func (ct *Ciphertext) Ephemeral() group.Point {
	return ct.group().NewPoint().Set(ct.ephemeral)
}

// Masked returns a copy of plaintext + k*Y.
func (ct *Ciphertext) Masked() group.Point {
	return ct.group().NewPoint().Set(ct.masked)
}

// Add returns a ciphertext of the sum of both plaintexts.
func (ct *Ciphertext) Add(other *Ciphertext) *Ciphertext {
	g := ct.group()
	return &Ciphertext{
		pk:        ct.pk,
		ephemeral: g.NewPoint().Add(ct.ephemeral, other.ephemeral),
		masked:    g.NewPoint().Add(ct.masked, other.masked),
	}
}

// Subtract returns a ciphertext of ct's plaintext minus other's.
func (ct *Ciphertext) Subtract(other *Ciphertext) *Ciphertext {
	g := ct.group()
	return &Ciphertext{
		pk:        ct.pk,
		ephemeral: g.NewPoint().Sub(ct.ephemeral, other.ephemeral),
		masked:    g.NewPoint().Sub(ct.masked, other.masked),
	}
}

// Scale returns a ciphertext of c times the plaintext.
func (ct *Ciphertext) Scale(c group.Scalar) *Ciphertext {
	g := ct.group()
	return &Ciphertext{
		pk:        ct.pk,
		ephemeral: g.NewPoint().ScalarMult(c, ct.ephemeral),
		masked:    g.NewPoint().ScalarMult(c, ct.masked),
	}
}

// Unscale returns a ciphertext of the plaintext multiplied by c^-1.
// Returns ErrZeroScalar if c is zero.
func (ct *Ciphertext) Unscale(c group.Scalar) (*Ciphertext, error) {
	if c.IsZero() {
		return nil, ErrZeroScalar
	}
	inv, err := ct.group().NewScalar().Invert(c)
	if err != nil {
		return nil, err
	}
	return ct.Scale(inv), nil
}

// Equal reports whether both ciphertexts have the same public key and
// identical components.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	if ct == nil || other == nil {
		return ct == other
	}
	return ct.pk.Equal(other.pk) &&
		ct.ephemeral.Equal(other.ephemeral) &&
		ct.masked.Equal(other.masked)
}

func (ct *Ciphertext) group() group.Group {
	return ct.pk.scheme.group
}

package threshold

import (
	"errors"

	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/group"
)

var (
	// ErrInvalidShare is returned when a dealt share does not match the
	// sender's polynomial commitments.
	ErrInvalidShare = errors.New("threshold: invalid share from participant")

	// ErrNotEnoughShares is returned when fewer than t decryption shares
	// are combined.
	ErrNotEnoughShares = errors.New("threshold: not enough decryption shares")

	// ErrDuplicateShare is returned when two shares carry the same ID.
	ErrDuplicateShare = errors.New("threshold: duplicate participant")
)

// Threshold holds the scheme and threshold parameters.
type Threshold struct {
	scheme    *elgamal.Scheme
	threshold int // t - minimum shares needed to decrypt
	total     int // n - total participants
}

// KeyShare represents a participant's share of the decryption key.
type KeyShare struct {
	ID       int                // participant identifier, 1 to n
	Secret   *elgamal.SecretKey // secret key share x_i
	GroupKey *elgamal.PublicKey // combined public key Y = x*G
}

// VerificationKey returns x_i*G, against which the participant's
// decryption shares are checked.
func (ks *KeyShare) VerificationKey() *elgamal.PublicKey {
	return ks.Secret.PublicKey()
}

// New creates a Threshold instance over scheme.
// threshold is the minimum number of participants needed to decrypt (t).
// total is the total number of participants (n).
func New(scheme *elgamal.Scheme, threshold, total int) (*Threshold, error) {
	if scheme == nil {
		return nil, errors.New("threshold: scheme must not be nil")
	}
	if threshold < 2 {
		return nil, errors.New("threshold must be at least 2")
	}
	if total < threshold {
		return nil, errors.New("total must be >= threshold")
	}

	return &Threshold{
		scheme:    scheme,
		threshold: threshold,
		total:     total,
	}, nil
}

// Scheme returns the underlying ElGamal scheme.
func (th *Threshold) Scheme() *elgamal.Scheme {
	return th.scheme
}

// Threshold returns t.
func (th *Threshold) Threshold() int {
	return th.threshold
}

// Total returns n.
func (th *Threshold) Total() int {
	return th.total
}

func (th *Threshold) group() group.Group {
	return th.scheme.Group()
}

func (th *Threshold) scalarFromInt(n int) group.Scalar {
	return th.group().NewScalar().SetUint64(uint64(n))
}

func (th *Threshold) evalPolynomial(coeffs []group.Scalar, x group.Scalar) group.Scalar {
	g := th.group()
	result := g.NewScalar().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = g.NewScalar().Mul(result, x)
		result = g.NewScalar().Add(result, coeffs[i])
	}
	return result
}

// evalCommitments computes sum(commitments[k] * x^k), the public image
// of the committed polynomial at x.
func (th *Threshold) evalCommitments(commitments []group.Point, x group.Scalar) group.Point {
	g := th.group()
	acc := g.NewPoint()
	xPower := th.scalarFromInt(1)
	for _, commit := range commitments {
		term := g.NewPoint().ScalarMult(xPower, commit)
		acc = g.NewPoint().Add(acc, term)
		xPower = g.NewScalar().Mul(xPower, x)
	}
	return acc
}

// lagrangeCoefficient returns the coefficient of participant id when
// interpolating at zero over ids.
func (th *Threshold) lagrangeCoefficient(id int, ids []int) (group.Scalar, error) {
	g := th.group()
	x := th.scalarFromInt(id)
	num := th.scalarFromInt(1)
	den := th.scalarFromInt(1)

	for _, other := range ids {
		if other == id {
			continue
		}
		xj := th.scalarFromInt(other)
		// num *= x_j
		num = g.NewScalar().Mul(num, xj)
		// den *= (x_j - x)
		diff := g.NewScalar().Sub(xj, x)
		den = g.NewScalar().Mul(den, diff)
	}

	denInv, err := g.NewScalar().Invert(den)
	if err != nil {
		return nil, err
	}
	return g.NewScalar().Mul(num, denInv), nil
}

package threshold

import (
	"fmt"
	"io"
	"sort"

	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/group"
)

// DecryptionShare is participant ID's contribution x_i*Ephemeral to
// decrypting one ciphertext, with a proof that it used its key share.
type DecryptionShare struct {
	ID    int
	Share group.Point // x_i * Ephemeral
	Proof *elgamal.Proof
}

// DecryptShare computes the participant's decryption share of ct.
//
// The proof is an ordinary decryption proof under the key share: it
// shows that Masked - Share is the decryption of ct under x_i, which
// holds exactly when Share = x_i*Ephemeral.
func (ks *KeyShare) DecryptShare(r io.Reader, ct *elgamal.Ciphertext) (*DecryptionShare, error) {
	g := ks.Secret.Scheme().Group()
	partial := ks.Secret.Decrypt(ct)
	share := g.NewPoint().Sub(ct.Masked(), partial)

	proof, err := ks.Secret.ProveCorrectDecryption(r, ct, partial)
	if err != nil {
		return nil, fmt.Errorf("participant %d: %w", ks.ID, err)
	}
	return &DecryptionShare{ID: ks.ID, Share: share, Proof: proof}, nil
}

// VerifyShare checks ds against the participant's verification key.
func VerifyShare(vk *elgamal.PublicKey, ct *elgamal.Ciphertext, ds *DecryptionShare) error {
	if ds == nil || ds.Share == nil {
		return fmt.Errorf("%w: empty decryption share", elgamal.ErrVerification)
	}
	g := vk.Scheme().Group()
	partial := g.NewPoint().Sub(ct.Masked(), ds.Share)
	if err := vk.VerifyCorrectDecryption(ds.Proof, ct, partial); err != nil {
		return fmt.Errorf("participant %d: %w", ds.ID, err)
	}
	return nil
}

// Combine interpolates at least t decryption shares and returns the
// plaintext. Shares are not verified; use [Threshold.CombineVerified]
// when they come from untrusted parties.
func (th *Threshold) Combine(ct *elgamal.Ciphertext, shares []*DecryptionShare) (group.Point, error) {
	if len(shares) < th.threshold {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrNotEnoughShares, len(shares), th.threshold)
	}

	// Use the t lowest IDs so the result does not depend on input order
	sorted := make([]*DecryptionShare, len(shares))
	copy(sorted, shares)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	ids := make([]int, 0, th.threshold)
	for i, s := range sorted {
		if s.ID < 1 || s.ID > th.total {
			return nil, fmt.Errorf("threshold: participant ID %d out of range", s.ID)
		}
		if i > 0 && sorted[i-1].ID == s.ID {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateShare, s.ID)
		}
		if len(ids) < th.threshold {
			ids = append(ids, s.ID)
		}
	}

	g := th.group()
	shared := g.NewPoint()
	for _, s := range sorted[:th.threshold] {
		lambda, err := th.lagrangeCoefficient(s.ID, ids)
		if err != nil {
			return nil, err
		}
		shared = g.NewPoint().Add(shared, g.NewPoint().ScalarMult(lambda, s.Share))
	}
	return g.NewPoint().Sub(ct.Masked(), shared), nil
}

// CombineVerified checks every share against verificationKeys, keyed by
// participant ID, before combining them.
func (th *Threshold) CombineVerified(ct *elgamal.Ciphertext, shares []*DecryptionShare, verificationKeys map[int]*elgamal.PublicKey) (group.Point, error) {
	for _, s := range shares {
		vk, ok := verificationKeys[s.ID]
		if !ok {
			return nil, fmt.Errorf("threshold: no verification key for participant %d", s.ID)
		}
		if err := VerifyShare(vk, ct, s); err != nil {
			return nil, err
		}
	}
	return th.Combine(ct, shares)
}

package elgamal

import (
	"fmt"
	"io"

	"github.com/f3rmion/elgamal-bn/group"
)

// Proof is a non-interactive proof that a plaintext is the correct
// decryption of a ciphertext: knowledge of x with Y = x*G and
// Masked - plaintext = x*Ephemeral.
type Proof struct {
	AnnouncementG group.Point  // k*G
	AnnouncementC group.Point  // k*Ephemeral
	Response      group.Scalar // k + e*x
}

// ProveCorrectDecryption proves that plaintext is the decryption of ct
// under sk, without revealing x. Fresh proof randomness is read from r;
// it is independent of the randomness used for encryption.
//
// The challenge is derived from the transcript
//
//	plaintext, Ephemeral, Masked, A1, A2, G, Y
//
// with every point serialized as its affine x || y. If any of these is a
// point without affine coordinates the error wraps
// [group.ErrAffineConversion].
func (sk *SecretKey) ProveCorrectDecryption(r io.Reader, ct *Ciphertext, plaintext group.Point) (*Proof, error) {
	g := sk.scheme.group

	k, err := g.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("sample proof randomness: %w", err)
	}

	a1 := g.NewPoint().ScalarMult(k, g.Generator())
	a2 := g.NewPoint().ScalarMult(k, ct.ephemeral)

	e, err := sk.scheme.challenge(plaintext, ct.ephemeral, ct.masked, a1, a2, sk.public.point)
	if err != nil {
		return nil, err
	}

	// s = k + e*x
	s := g.NewScalar().Mul(e, sk.x)
	s = g.NewScalar().Add(k, s)

	return &Proof{
		AnnouncementG: a1,
		AnnouncementC: a2,
		Response:      s,
	}, nil
}

// VerifyCorrectDecryption checks that proof shows plaintext to be the
// decryption of ct under the secret key matching pk. It recomputes the
// challenge e and checks
//
//	s*G         == A1 + e*Y
//	s*Ephemeral == A2 + e*(Masked - plaintext)
//
// A proof that fails either equation yields ErrVerification. Transcript
// conversion failures are reported separately and wrap
// [group.ErrAffineConversion].
func (pk *PublicKey) VerifyCorrectDecryption(proof *Proof, ct *Ciphertext, plaintext group.Point) error {
	if proof == nil || proof.AnnouncementG == nil || proof.AnnouncementC == nil || proof.Response == nil {
		return fmt.Errorf("%w: incomplete proof", ErrVerification)
	}
	if ct == nil || plaintext == nil {
		return fmt.Errorf("%w: missing ciphertext or plaintext", ErrVerification)
	}
	g := pk.scheme.group

	e, err := pk.scheme.challenge(plaintext, ct.ephemeral, ct.masked, proof.AnnouncementG, proof.AnnouncementC, pk.point)
	if err != nil {
		return err
	}

	lhs := g.NewPoint().ScalarMult(proof.Response, g.Generator())
	rhs := g.NewPoint().Add(proof.AnnouncementG, g.NewPoint().ScalarMult(e, pk.point))
	if !lhs.Equal(rhs) {
		return ErrVerification
	}

	shared := g.NewPoint().Sub(ct.masked, plaintext)
	lhs = g.NewPoint().ScalarMult(proof.Response, ct.ephemeral)
	rhs = g.NewPoint().Add(proof.AnnouncementC, g.NewPoint().ScalarMult(e, shared))
	if !lhs.Equal(rhs) {
		return ErrVerification
	}
	return nil
}

// HexWords returns the proof as the five 0x-prefixed uint256 words
// [A1.x, A1.y, A2.x, A2.y, s], the calldata layout expected by a
// Solidity verifier.
func (p *Proof) HexWords() ([5]string, error) {
	var words [5]string
	a1x, a1y, err := PointToHex(p.AnnouncementG)
	if err != nil {
		return words, fmt.Errorf("announcement A1: %w", err)
	}
	a2x, a2y, err := PointToHex(p.AnnouncementC)
	if err != nil {
		return words, fmt.Errorf("announcement A2: %w", err)
	}
	words[0], words[1] = a1x, a1y
	words[2], words[3] = a2x, a2y
	words[4] = ScalarToHex(p.Response)
	return words, nil
}

var transcriptLabels = [...]string{"plaintext", "ephemeral", "masked", "A1", "A2", "generator", "public key"}

// challenge hashes plaintext, ephemeral, masked, a1, a2, G and y, in that
// order, and reduces the digest modulo the group order.
func (s *Scheme) challenge(plaintext, ephemeral, masked, a1, a2, y group.Point) (group.Scalar, error) {
	points := [...]group.Point{plaintext, ephemeral, masked, a1, a2, s.group.Generator(), y}

	chunks := make([][]byte, 0, 2*len(points))
	for i, p := range points {
		cx, cy, err := p.Coordinates()
		if err != nil {
			return nil, fmt.Errorf("transcript %s: %w", transcriptLabels[i], err)
		}
		chunks = append(chunks, cx, cy)
	}

	digest := s.hasher.Sum(chunks...)
	e, err := s.group.NewScalar().SetBytes(digest)
	if err != nil {
		return nil, fmt.Errorf("challenge from digest: %w", err)
	}
	return e, nil
}

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/group"
	"github.com/f3rmion/elgamal-bn/internal/logging"
)

// Opening is the published result of a session: the aggregate
// ciphertext, its decryption and a proof that the decryption is correct.
type Opening struct {
	Ciphertext *elgamal.Ciphertext
	Plaintext  group.Point
	Proof      *elgamal.Proof
}

// Value decodes the plaintext as a small integer m with Plaintext = m*G,
// searching [0, max].
func (o *Opening) Value(max uint64) (uint64, error) {
	return elgamal.DecodeUint64(o.Ciphertext.PublicKey().Scheme().Group(), o.Plaintext, max)
}

// Opener holds a secret key and opens sessions under its public key.
// Each session can be opened only once.
type Opener struct {
	mu     sync.Mutex
	sk     *elgamal.SecretKey
	logger logging.Logger
	closed bool
}

// NewOpener holds a private copy of sk, so closing the opener leaves the
// caller's key intact. A nil logger discards all output.
func NewOpener(sk *elgamal.SecretKey, logger logging.Logger) (*Opener, error) {
	if sk == nil {
		return nil, errors.New("session: secret key must not be nil")
	}
	own, err := sk.Clone()
	if err != nil {
		return nil, fmt.Errorf("session: copy secret key: %w", err)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Opener{
		sk:     own,
		logger: logger.With("component", "opener", logging.Redacted("secret_key")),
	}, nil
}

// PublicKey returns the public key matching the opener's secret key.
func (o *Opener) PublicKey() *elgamal.PublicKey {
	return o.sk.PublicKey()
}

// Open decrypts the aggregate of s and proves the decryption, using r
// for proof randomness.
//
// This method consumes the session, even if proving fails. Opening it a
// second time returns ErrConsumed, and no further ciphertexts can be
// added. A plaintext without affine coordinates, such as a zero tally
// on BN254, cannot be proven and yields [group.ErrAffineConversion].
func (o *Opener) Open(ctx context.Context, r io.Reader, s *Session) (*Opening, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil, errors.New("session: opener closed")
	}
	if !s.PublicKey().Equal(o.sk.PublicKey()) {
		return nil, ErrKeyMismatch
	}

	sum, err := s.consume()
	if err != nil {
		return nil, err
	}

	plaintext := o.sk.Decrypt(sum)
	proof, err := o.sk.ProveCorrectDecryption(r, sum, plaintext)
	if err != nil {
		o.logger.Error(ctx, "decryption proof failed", "error", err)
		return nil, fmt.Errorf("prove decryption: %w", err)
	}

	o.logger.Info(ctx, "session opened", "ciphertexts", s.Count())
	return &Opening{
		Ciphertext: sum,
		Plaintext:  plaintext,
		Proof:      proof,
	}, nil
}

// Close zeroizes the opener's copy of the secret key. The opener cannot be used afterwards.
func (o *Opener) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.closed {
		o.sk.Zeroize()
		o.closed = true
	}
}

// VerifyOpening checks that op was produced by the holder of the secret
// key matching pk.
//
// Returns nil if the opening is valid, or an error describing why it's
// invalid; a bad proof wraps [elgamal.ErrVerification].
func VerifyOpening(pk *elgamal.PublicKey, op *Opening) error {
	if op == nil || op.Ciphertext == nil {
		return fmt.Errorf("%w: empty opening", elgamal.ErrVerification)
	}
	if !op.Ciphertext.PublicKey().Equal(pk) {
		return ErrKeyMismatch
	}
	return pk.VerifyCorrectDecryption(op.Proof, op.Ciphertext, op.Plaintext)
}

// QuickTally adds cts into a fresh session, opens it with sk and decodes
// the result as an integer in [0, max].
//
// This is useful for testing or single-process setups where the key
// holder also collects the ciphertexts. For distributed use, build a
// [Session] and an [Opener] separately.
func QuickTally(ctx context.Context, r io.Reader, sk *elgamal.SecretKey, cts []*elgamal.Ciphertext, max uint64) (uint64, *Opening, error) {
	s, err := New(sk.PublicKey(), nil)
	if err != nil {
		return 0, nil, err
	}
	for i, ct := range cts {
		if err := s.Add(ctx, ct); err != nil {
			return 0, nil, fmt.Errorf("ciphertext %d: %w", i, err)
		}
	}

	o, err := NewOpener(sk, nil)
	if err != nil {
		return 0, nil, err
	}
	defer o.Close()
	op, err := o.Open(ctx, r, s)
	if err != nil {
		return 0, nil, err
	}
	v, err := op.Value(max)
	if err != nil {
		return 0, nil, err
	}
	return v, op, nil
}

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/internal/logging"
)

var (
	// ErrKeyMismatch is returned when a ciphertext or opening was formed
	// under a different public key than the session's.
	ErrKeyMismatch = errors.New("session: ciphertext public key does not match session key")

	// ErrConsumed is returned when a session is used after it was opened.
	ErrConsumed = errors.New("session: already opened")

	// ErrEmpty is returned when aggregating a session without ciphertexts.
	ErrEmpty = errors.New("session: no ciphertexts added")
)

// Session accumulates ciphertexts under one public key. It is safe for
// concurrent use. Create sessions using [New].
type Session struct {
	mu     sync.Mutex
	pk     *elgamal.PublicKey
	logger logging.Logger
	sum    *elgamal.Ciphertext
	count  int
	opened bool
}

// New creates an empty session for ciphertexts under pk. A nil logger
// discards all output.
func New(pk *elgamal.PublicKey, logger logging.Logger) (*Session, error) {
	if pk == nil {
		return nil, errors.New("session: public key must not be nil")
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Session{
		pk:     pk,
		logger: logger.With("component", "session", "group", pk.Scheme().Group().Name()),
	}, nil
}

// PublicKey returns the session key.
func (s *Session) PublicKey() *elgamal.PublicKey {
	return s.pk
}

// Add folds ct into the running sum.
//
// Unlike [elgamal.Ciphertext.Add], which leaves key agreement to the
// caller, Add rejects ciphertexts formed under another key with
// ErrKeyMismatch.
func (s *Session) Add(ctx context.Context, ct *elgamal.Ciphertext) error {
	if ct == nil {
		return errors.New("session: nil ciphertext")
	}
	if !ct.PublicKey().Equal(s.pk) {
		s.logger.Warn(ctx, "rejected ciphertext", "reason", "key mismatch")
		return ErrKeyMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return ErrConsumed
	}
	if s.sum == nil {
		s.sum = ct
	} else {
		s.sum = s.sum.Add(ct)
	}
	s.count++
	s.logger.Debug(ctx, "added ciphertext", "count", s.count)
	return nil
}

// Aggregate returns the homomorphic sum of all ciphertexts added so far.
func (s *Session) Aggregate() (*elgamal.Ciphertext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregateLocked()
}

func (s *Session) aggregateLocked() (*elgamal.Ciphertext, error) {
	if s.count == 0 {
		return nil, ErrEmpty
	}
	return s.sum, nil
}

// Count returns the number of ciphertexts added.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// IsOpened reports whether the session was already opened.
func (s *Session) IsOpened() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened
}

// consume marks the session opened and returns the final aggregate.
func (s *Session) consume() (*elgamal.Ciphertext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil, ErrConsumed
	}
	sum, err := s.aggregateLocked()
	if err != nil {
		return nil, err
	}
	s.opened = true
	return sum, nil
}

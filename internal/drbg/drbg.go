// Package drbg provides deterministic randomness streams derived from a
// seed with BLAKE3. It exists so that test vectors can be regenerated
// byte for byte; it must never be used to create keys that protect real
// data.
package drbg

import (
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

const deriveContext = "elgamal-bn 2024-06 deterministic stream key"

// ErrEmptySeed is returned when a Source is created without seed material.
var ErrEmptySeed = errors.New("drbg: seed must not be empty")

// Source derives independent randomness streams from one seed.
type Source struct {
	key [32]byte
}

// New derives a Source key from seed.
func New(seed []byte) (*Source, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	s := &Source{}
	blake3.DeriveKey(deriveContext, seed, s.key[:])
	return s, nil
}

// Stream returns the XOF output of the keyed hash over label. Equal
// labels yield equal streams; distinct labels yield unrelated ones.
// The returned reader is not safe for concurrent use.
func (s *Source) Stream(label string) io.Reader {
	h, err := blake3.NewKeyed(s.key[:])
	if err != nil {
		// The key is always 32 bytes.
		panic(fmt.Sprintf("drbg: keyed blake3: %v", err))
	}
	_, _ = h.WriteString(label)
	return h.Digest()
}

// Indexed returns Stream for the i-th worker of a named job.
func (s *Source) Indexed(job string, i int) io.Reader {
	return s.Stream(fmt.Sprintf("%s/%d", job, i))
}

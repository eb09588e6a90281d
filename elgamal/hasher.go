package elgamal

import (
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashAlgorithm names a transcript hash function.
type HashAlgorithm string

const (
	// Keccak256 is the hash exposed to Solidity as keccak256.
	Keccak256 HashAlgorithm = "keccak256"
	// SHA512 is SHA-512 from FIPS 180-4.
	SHA512 HashAlgorithm = "sha512"
	// Blake2b512 is BLAKE2b with a 64-byte digest.
	Blake2b512 HashAlgorithm = "blake2b"
)

// ParseHashAlgorithm parses a hash algorithm name, case-insensitively.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch alg := HashAlgorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case Keccak256, SHA512, Blake2b512:
		return alg, nil
	default:
		return "", fmt.Errorf("elgamal: unknown hash algorithm %q", name)
	}
}

// Hasher defines the hash used to derive Fiat-Shamir challenges.
// Different implementations can provide different hash functions
// and domain separation schemes.
//
// The digest is interpreted as a big-endian integer and reduced modulo
// the group order, so it must be at least as wide as the scalar field.
type Hasher interface {
	// Algorithm identifies the hash function.
	Algorithm() HashAlgorithm

	// Sum hashes the concatenation of chunks, in order.
	Sum(chunks ...[]byte) []byte
}

// NewHasher returns the default Hasher for alg.
func NewHasher(alg HashAlgorithm) (Hasher, error) {
	switch alg {
	case Keccak256:
		return &Keccak256Hasher{}, nil
	case SHA512:
		return &SHA512Hasher{}, nil
	case Blake2b512:
		return NewBlake2bHasher(), nil
	default:
		return nil, fmt.Errorf("elgamal: unknown hash algorithm %q", alg)
	}
}

// Keccak256Hasher implements Hasher using the original (pre-FIPS) Keccak-256.
// Chunks are hashed with no framing, so a transcript hashed here matches
// keccak256(abi.encodePacked(...)) over the same uint256 words in Solidity.
// This is the default hasher.
type Keccak256Hasher struct{}

// Algorithm implements Hasher.Algorithm.
func (h *Keccak256Hasher) Algorithm() HashAlgorithm {
	return Keccak256
}

// Sum implements Hasher.Sum.
func (h *Keccak256Hasher) Sum(chunks ...[]byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		hasher.Write(c)
	}
	return hasher.Sum(nil)
}

// SHA512Hasher implements Hasher using SHA-512.
type SHA512Hasher struct{}

// Algorithm implements Hasher.Algorithm.
func (h *SHA512Hasher) Algorithm() HashAlgorithm {
	return SHA512
}

// Sum implements Hasher.Sum.
func (h *SHA512Hasher) Sum(chunks ...[]byte) []byte {
	hasher := sha512.New()
	for _, c := range chunks {
		hasher.Write(c)
	}
	return hasher.Sum(nil)
}

// Blake2bHasher implements Hasher using Blake2b-512 with domain separation.
//
// Domain separation format: prefix + input
type Blake2bHasher struct {
	// Prefix is the domain separation prefix.
	// Default: "ELGAMAL-BN-BLAKE2B512-v1"
	Prefix string
}

// NewBlake2bHasher creates a Blake2bHasher with the default prefix.
func NewBlake2bHasher() *Blake2bHasher {
	return &Blake2bHasher{
		Prefix: "ELGAMAL-BN-BLAKE2B512-v1",
	}
}

// Algorithm implements Hasher.Algorithm.
func (h *Blake2bHasher) Algorithm() HashAlgorithm {
	return Blake2b512
}

// Sum implements Hasher.Sum.
func (h *Blake2bHasher) Sum(chunks ...[]byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(h.Prefix))
	for _, c := range chunks {
		hasher.Write(c)
	}
	return hasher.Sum(nil)
}

package vectors

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/elgamal-bn/bjj"
	"github.com/f3rmion/elgamal-bn/bn254"
	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/group"
)

// MaxValue bounds the integer plaintexts encoded in a bundle.
const MaxValue = 1 << 10

var bundleNamespace = uuid.MustParse("6b1f3c2e-5a4d-4e8f-9c7b-2d0e1f3a4b5c")

// ErrUnknownGroup is returned for a group name with no provider.
var ErrUnknownGroup = errors.New("vectors: unknown group")

// GroupByName returns the group provider registered under name.
func GroupByName(name string) (group.Group, error) {
	switch strings.ToLower(name) {
	case "bn254":
		return bn254.New(), nil
	case "bjj":
		return &bjj.BJJ{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
}

// Pair is an affine point as two separate text coordinates.
type Pair struct {
	X string `json:"x" cbor:"1,keyasint"`
	Y string `json:"y" cbor:"2,keyasint"`
}

// Ciphertext is the text form of an ElGamal ciphertext.
type Ciphertext struct {
	Ephemeral Pair `json:"ephemeral" cbor:"1,keyasint"`
	Masked    Pair `json:"masked" cbor:"2,keyasint"`
}

// Proof is the text form of a decryption proof.
type Proof struct {
	A1 Pair   `json:"a1" cbor:"1,keyasint"`
	A2 Pair   `json:"a2" cbor:"2,keyasint"`
	S  string `json:"s" cbor:"3,keyasint"`
}

// Vector is one encrypt/decrypt/prove case.
type Vector struct {
	Index      int        `json:"index" cbor:"1,keyasint"`
	Value      uint64     `json:"value" cbor:"2,keyasint"`
	PublicKey  Pair       `json:"public_key" cbor:"3,keyasint"`
	Plaintext  Pair       `json:"plaintext" cbor:"4,keyasint"`
	Ciphertext Ciphertext `json:"ciphertext" cbor:"5,keyasint"`
	Proof      Proof      `json:"proof" cbor:"6,keyasint"`
}

// Bundle is a set of vectors sharing one group, hash and text format.
type Bundle struct {
	ID      string   `json:"id" cbor:"1,keyasint"`
	Group   string   `json:"group" cbor:"2,keyasint"`
	Hash    string   `json:"hash" cbor:"3,keyasint"`
	Format  string   `json:"format" cbor:"4,keyasint"`
	Vectors []Vector `json:"vectors" cbor:"5,keyasint"`
}

// Config selects what Generate produces.
type Config struct {
	Group  group.Group
	Hasher elgamal.Hasher
	Format elgamal.CoordinateFormat
	Count  int

	// Seed, when set, makes the bundle ID a name-based UUID so that a
	// deterministic rng reproduces the bundle exactly.
	Seed []byte
}

// RandFunc returns the randomness stream for the i-th vector. Streams
// are used from one goroutine each.
type RandFunc func(i int) io.Reader

// Generate builds cfg.Count vectors concurrently. Each vector uses a
// fresh key and reads only from rng(i).
func Generate(ctx context.Context, cfg Config, rng RandFunc) (*Bundle, error) {
	if cfg.Count < 1 {
		return nil, errors.New("vectors: count must be positive")
	}
	scheme, err := elgamal.New(cfg.Group, cfg.Hasher)
	if err != nil {
		return nil, err
	}
	if cfg.Format == "" {
		cfg.Format = elgamal.FormatHex
	}

	id, err := bundleID(cfg, scheme)
	if err != nil {
		return nil, err
	}

	out := make([]Vector, cfg.Count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := generateOne(scheme, cfg.Format, i, rng(i))
			if err != nil {
				return fmt.Errorf("vector %d: %w", i, err)
			}
			out[i] = *v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Bundle{
		ID:      id,
		Group:   scheme.Group().Name(),
		Hash:    string(scheme.Hasher().Algorithm()),
		Format:  string(cfg.Format),
		Vectors: out,
	}, nil
}

func bundleID(cfg Config, scheme *elgamal.Scheme) (string, error) {
	if len(cfg.Seed) == 0 {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("bundle id: %w", err)
		}
		return id.String(), nil
	}
	name := fmt.Sprintf("%s/%s/%s/%d/%x", scheme.Group().Name(), scheme.Hasher().Algorithm(), cfg.Format, cfg.Count, cfg.Seed)
	return uuid.NewSHA1(bundleNamespace, []byte(name)).String(), nil
}

func generateOne(scheme *elgamal.Scheme, format elgamal.CoordinateFormat, index int, r io.Reader) (*Vector, error) {
	g := scheme.Group()

	sk, err := scheme.NewSecretKey(r)
	if err != nil {
		return nil, err
	}
	defer sk.Zeroize()

	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("sample value: %w", err)
	}
	// Zero would encode to the identity, which has no affine form on BN254.
	value := 1 + binary.BigEndian.Uint64(buf[:])%(MaxValue-1)

	pk := sk.PublicKey()
	ct, err := pk.Encrypt(r, elgamal.EncodeUint64(g, value))
	if err != nil {
		return nil, err
	}
	plaintext := sk.Decrypt(ct)
	proof, err := sk.ProveCorrectDecryption(r, ct, plaintext)
	if err != nil {
		return nil, err
	}

	v := &Vector{Index: index, Value: value}
	fields := []struct {
		dst *Pair
		p   group.Point
	}{
		{&v.PublicKey, pk.Point()},
		{&v.Plaintext, plaintext},
		{&v.Ciphertext.Ephemeral, ct.Ephemeral()},
		{&v.Ciphertext.Masked, ct.Masked()},
		{&v.Proof.A1, proof.AnnouncementG},
		{&v.Proof.A2, proof.AnnouncementC},
	}
	for _, f := range fields {
		if f.dst.X, f.dst.Y, err = elgamal.EncodePoint(format, f.p); err != nil {
			return nil, err
		}
	}
	if v.Proof.S, err = elgamal.EncodeScalar(format, proof.Response); err != nil {
		return nil, err
	}
	return v, nil
}

// VerifyEach checks every vector and returns one entry per vector, nil
// when the vector is valid.
func (b *Bundle) VerifyEach() ([]error, error) {
	g, err := GroupByName(b.Group)
	if err != nil {
		return nil, err
	}
	alg, err := elgamal.ParseHashAlgorithm(b.Hash)
	if err != nil {
		return nil, err
	}
	h, err := elgamal.NewHasher(alg)
	if err != nil {
		return nil, err
	}
	format, err := elgamal.ParseCoordinateFormat(b.Format)
	if err != nil {
		return nil, err
	}
	scheme, err := elgamal.New(g, h)
	if err != nil {
		return nil, err
	}

	results := make([]error, len(b.Vectors))
	for i := range b.Vectors {
		results[i] = b.Vectors[i].verify(scheme, format)
	}
	return results, nil
}

// Verify checks every vector and joins all failures.
func (b *Bundle) Verify() error {
	results, err := b.VerifyEach()
	if err != nil {
		return err
	}
	var errs []error
	for i, err := range results {
		if err != nil {
			errs = append(errs, fmt.Errorf("vector %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (v *Vector) verify(scheme *elgamal.Scheme, format elgamal.CoordinateFormat) error {
	g := scheme.Group()
	decode := func(name string, p Pair) (group.Point, error) {
		pt, err := elgamal.DecodePoint(format, g, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return pt, nil
	}

	y, err := decode("public key", v.PublicKey)
	if err != nil {
		return err
	}
	plaintext, err := decode("plaintext", v.Plaintext)
	if err != nil {
		return err
	}
	eph, err := decode("ephemeral", v.Ciphertext.Ephemeral)
	if err != nil {
		return err
	}
	masked, err := decode("masked", v.Ciphertext.Masked)
	if err != nil {
		return err
	}
	a1, err := decode("A1", v.Proof.A1)
	if err != nil {
		return err
	}
	a2, err := decode("A2", v.Proof.A2)
	if err != nil {
		return err
	}
	s, err := elgamal.DecodeScalar(format, g, v.Proof.S)
	if err != nil {
		return fmt.Errorf("response: %w", err)
	}

	if !plaintext.Equal(elgamal.EncodeUint64(g, v.Value)) {
		return fmt.Errorf("plaintext is not %d*G", v.Value)
	}

	pk := scheme.PublicKeyFromPoint(y)
	ct := elgamal.NewCiphertext(pk, eph, masked)
	proof := &elgamal.Proof{AnnouncementG: a1, AnnouncementC: a2, Response: s}
	return pk.VerifyCorrectDecryption(proof, ct, plaintext)
}

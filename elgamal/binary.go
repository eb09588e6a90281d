package elgamal

import (
	"fmt"

	"github.com/f3rmion/elgamal-bn/group"
)

// appendPoint appends the affine x || y of p.
func appendPoint(dst []byte, p group.Point) ([]byte, error) {
	x, y, err := p.Coordinates()
	if err != nil {
		return nil, err
	}
	dst = append(dst, x...)
	return append(dst, y...), nil
}

// readPoint parses one affine x || y from the front of data.
func readPoint(g group.Group, data []byte) (group.Point, []byte, error) {
	n := g.CoordinateSize()
	if len(data) < 2*n {
		return nil, nil, ErrInvalidEncoding
	}
	p, err := g.NewPoint().SetCoordinates(data[:n], data[n:2*n])
	if err != nil {
		return nil, nil, err
	}
	return p, data[2*n:], nil
}

// MarshalBinary encodes the ciphertext as Ephemeral.x || Ephemeral.y ||
// Masked.x || Masked.y, each coordinate fixed-width big-endian.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	g := ct.group()
	out := make([]byte, 0, 4*g.CoordinateSize())
	out, err := appendPoint(out, ct.ephemeral)
	if err != nil {
		return nil, fmt.Errorf("ephemeral: %w", err)
	}
	out, err = appendPoint(out, ct.masked)
	if err != nil {
		return nil, fmt.Errorf("masked: %w", err)
	}
	return out, nil
}

// UnmarshalCiphertext decodes a ciphertext produced by
// [Ciphertext.MarshalBinary] and binds it to pk.
func (pk *PublicKey) UnmarshalCiphertext(data []byte) (*Ciphertext, error) {
	g := pk.scheme.group
	if len(data) != 4*g.CoordinateSize() {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, want %d", ErrInvalidEncoding, len(data), 4*g.CoordinateSize())
	}
	ephemeral, rest, err := readPoint(g, data)
	if err != nil {
		return nil, fmt.Errorf("ephemeral: %w", err)
	}
	masked, _, err := readPoint(g, rest)
	if err != nil {
		return nil, fmt.Errorf("masked: %w", err)
	}
	return &Ciphertext{pk: pk, ephemeral: ephemeral, masked: masked}, nil
}

// MarshalCompressed encodes the ciphertext as the group's compressed
// encodings of Ephemeral and Masked. Unlike [Ciphertext.MarshalBinary]
// it also covers the identity, for example a zero tally on BN254.
func (ct *Ciphertext) MarshalCompressed() []byte {
	out := ct.ephemeral.Bytes()
	return append(out, ct.masked.Bytes()...)
}

// UnmarshalCompressedCiphertext decodes a ciphertext produced by
// [Ciphertext.MarshalCompressed] and binds it to pk.
func (pk *PublicKey) UnmarshalCompressedCiphertext(data []byte) (*Ciphertext, error) {
	g := pk.scheme.group
	n := len(g.NewPoint().Bytes())
	if len(data) != 2*n {
		return nil, fmt.Errorf("%w: compressed ciphertext is %d bytes, want %d", ErrInvalidEncoding, len(data), 2*n)
	}
	ephemeral, err := g.NewPoint().SetBytes(data[:n])
	if err != nil {
		return nil, fmt.Errorf("%w: ephemeral: %w", ErrInvalidEncoding, err)
	}
	masked, err := g.NewPoint().SetBytes(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: masked: %w", ErrInvalidEncoding, err)
	}
	return &Ciphertext{pk: pk, ephemeral: ephemeral, masked: masked}, nil
}

// MarshalBinary encodes the proof as A1.x || A1.y || A2.x || A2.y || s.
func (p *Proof) MarshalBinary() ([]byte, error) {
	out, err := appendPoint(nil, p.AnnouncementG)
	if err != nil {
		return nil, fmt.Errorf("announcement A1: %w", err)
	}
	out, err = appendPoint(out, p.AnnouncementC)
	if err != nil {
		return nil, fmt.Errorf("announcement A2: %w", err)
	}
	return append(out, p.Response.Bytes()...), nil
}

// UnmarshalProof decodes a proof produced by [Proof.MarshalBinary].
// A response that is not reduced modulo the group order is rejected.
func (s *Scheme) UnmarshalProof(data []byte) (*Proof, error) {
	g := s.group
	width := len(g.NewScalar().Bytes())
	want := 4*g.CoordinateSize() + width
	if len(data) != want {
		return nil, fmt.Errorf("%w: proof is %d bytes, want %d", ErrInvalidEncoding, len(data), want)
	}
	a1, rest, err := readPoint(g, data)
	if err != nil {
		return nil, fmt.Errorf("announcement A1: %w", err)
	}
	a2, rest, err := readPoint(g, rest)
	if err != nil {
		return nil, fmt.Errorf("announcement A2: %w", err)
	}
	resp, err := canonicalScalar(g, rest)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}
	return &Proof{AnnouncementG: a1, AnnouncementC: a2, Response: resp}, nil
}

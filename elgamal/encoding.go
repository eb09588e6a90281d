package elgamal

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/f3rmion/elgamal-bn/group"
)

const hexPrefix = "0x"

// CoordinateFormat selects how points and scalars are rendered as text.
type CoordinateFormat string

const (
	// FormatHex renders each value as 0x followed by a fixed number of
	// lowercase hex digits (64 for 32-byte values), big-endian.
	FormatHex CoordinateFormat = "hex"
	// FormatDecimal renders each value as a base-10 integer. A point is a
	// pair of separate strings; coordinates are never concatenated.
	FormatDecimal CoordinateFormat = "decimal"
)

// ParseCoordinateFormat parses a format name, case-insensitively.
func ParseCoordinateFormat(name string) (CoordinateFormat, error) {
	switch f := CoordinateFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatHex, FormatDecimal:
		return f, nil
	default:
		return "", fmt.Errorf("elgamal: unknown coordinate format %q", name)
	}
}

// CoordinateToHex renders a big-endian field element as 0x-prefixed hex,
// keeping leading zeros.
func CoordinateToHex(b []byte) string {
	return hexPrefix + hex.EncodeToString(b)
}

// ScalarToHex renders s as 0x-prefixed fixed-width hex.
func ScalarToHex(s group.Scalar) string {
	return CoordinateToHex(s.Bytes())
}

// PointToHex returns the affine coordinates of p as 0x-prefixed hex.
func PointToHex(p group.Point) (x, y string, err error) {
	xb, yb, err := p.Coordinates()
	if err != nil {
		return "", "", err
	}
	return CoordinateToHex(xb), CoordinateToHex(yb), nil
}

// HexCoordinates returns the key's affine coordinates as 0x-prefixed hex.
func (pk *PublicKey) HexCoordinates() (x, y string, err error) {
	return PointToHex(pk.point)
}

// coordinateFromHex checks the prefix and the exact length before
// decoding any digit.
func coordinateFromHex(s string, size int) ([]byte, error) {
	if !strings.HasPrefix(s, hexPrefix) {
		return nil, ErrIncorrectPrefix
	}
	if len(s) != len(hexPrefix)+2*size {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidHexLength, len(s), len(hexPrefix)+2*size)
	}
	b, err := hex.DecodeString(s[len(hexPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// PointFromHex reconstructs a point from 0x-prefixed hex coordinates.
func PointFromHex(g group.Group, x, y string) (group.Point, error) {
	xb, err := coordinateFromHex(x, g.CoordinateSize())
	if err != nil {
		return nil, fmt.Errorf("x coordinate: %w", err)
	}
	yb, err := coordinateFromHex(y, g.CoordinateSize())
	if err != nil {
		return nil, fmt.Errorf("y coordinate: %w", err)
	}
	return g.NewPoint().SetCoordinates(xb, yb)
}

// ScalarFromHex parses a 0x-prefixed fixed-width scalar. Values not
// reduced modulo the group order are rejected.
func ScalarFromHex(g group.Group, s string) (group.Scalar, error) {
	width := len(g.NewScalar().Bytes())
	b, err := coordinateFromHex(s, width)
	if err != nil {
		return nil, err
	}
	return canonicalScalar(g, b)
}

// PublicKeyFromHex parses a public key from its 0x-prefixed hex affine
// coordinates, as produced by HexCoordinates.
func (s *Scheme) PublicKeyFromHex(x, y string) (*PublicKey, error) {
	p, err := PointFromHex(s.group, x, y)
	if err != nil {
		return nil, err
	}
	return &PublicKey{scheme: s, point: p}, nil
}

// CoordinateToDecimal renders a big-endian field element in base 10.
func CoordinateToDecimal(b []byte) string {
	return new(big.Int).SetBytes(b).String()
}

// ScalarToDecimal renders s in base 10.
func ScalarToDecimal(s group.Scalar) string {
	return CoordinateToDecimal(s.Bytes())
}

// PointToDecimal returns the affine coordinates of p in base 10.
func PointToDecimal(p group.Point) (x, y string, err error) {
	xb, yb, err := p.Coordinates()
	if err != nil {
		return "", "", err
	}
	return CoordinateToDecimal(xb), CoordinateToDecimal(yb), nil
}

// DecimalCoordinates returns the key's affine coordinates in base 10.
func (pk *PublicKey) DecimalCoordinates() (x, y string, err error) {
	return PointToDecimal(pk.point)
}

func coordinateFromDecimal(s string, size int) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidDecimal)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidDecimal, c)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidDecimal
	}
	if v.BitLen() > 8*size {
		return nil, fmt.Errorf("%w: value exceeds %d bytes", ErrInvalidDecimal, size)
	}
	return v.FillBytes(make([]byte, size)), nil
}

// PointFromDecimal reconstructs a point from base-10 coordinates.
func PointFromDecimal(g group.Group, x, y string) (group.Point, error) {
	xb, err := coordinateFromDecimal(x, g.CoordinateSize())
	if err != nil {
		return nil, fmt.Errorf("x coordinate: %w", err)
	}
	yb, err := coordinateFromDecimal(y, g.CoordinateSize())
	if err != nil {
		return nil, fmt.Errorf("y coordinate: %w", err)
	}
	return g.NewPoint().SetCoordinates(xb, yb)
}

// ScalarFromDecimal parses a base-10 scalar. Values not reduced modulo
// the group order are rejected.
func ScalarFromDecimal(g group.Group, s string) (group.Scalar, error) {
	b, err := coordinateFromDecimal(s, len(g.NewScalar().Bytes()))
	if err != nil {
		return nil, err
	}
	return canonicalScalar(g, b)
}

// PublicKeyFromDecimal parses a public key from base-10 affine coordinates.
func (s *Scheme) PublicKeyFromDecimal(x, y string) (*PublicKey, error) {
	p, err := PointFromDecimal(s.group, x, y)
	if err != nil {
		return nil, err
	}
	return &PublicKey{scheme: s, point: p}, nil
}

// EncodePoint renders p in the given format.
func EncodePoint(format CoordinateFormat, p group.Point) (x, y string, err error) {
	switch format {
	case FormatHex:
		return PointToHex(p)
	case FormatDecimal:
		return PointToDecimal(p)
	default:
		return "", "", fmt.Errorf("elgamal: unknown coordinate format %q", format)
	}
}

// DecodePoint parses a point rendered by EncodePoint.
func DecodePoint(format CoordinateFormat, g group.Group, x, y string) (group.Point, error) {
	switch format {
	case FormatHex:
		return PointFromHex(g, x, y)
	case FormatDecimal:
		return PointFromDecimal(g, x, y)
	default:
		return nil, fmt.Errorf("elgamal: unknown coordinate format %q", format)
	}
}

// EncodeScalar renders s in the given format.
func EncodeScalar(format CoordinateFormat, s group.Scalar) (string, error) {
	switch format {
	case FormatHex:
		return ScalarToHex(s), nil
	case FormatDecimal:
		return ScalarToDecimal(s), nil
	default:
		return "", fmt.Errorf("elgamal: unknown coordinate format %q", format)
	}
}

// DecodeScalar parses a scalar rendered by EncodeScalar.
func DecodeScalar(format CoordinateFormat, g group.Group, s string) (group.Scalar, error) {
	switch format {
	case FormatHex:
		return ScalarFromHex(g, s)
	case FormatDecimal:
		return ScalarFromDecimal(g, s)
	default:
		return nil, fmt.Errorf("elgamal: unknown coordinate format %q", format)
	}
}

func canonicalScalar(g group.Group, b []byte) (group.Scalar, error) {
	s, err := g.NewScalar().SetBytes(b)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(s.Bytes(), b) {
		return nil, fmt.Errorf("%w: scalar not reduced modulo the group order", ErrInvalidEncoding)
	}
	return s, nil
}

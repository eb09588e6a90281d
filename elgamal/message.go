package elgamal

import (
	"fmt"

	"github.com/f3rmion/elgamal-bn/group"
)

// EncodeUint64 maps m to the group element m*G. Encrypting m*G instead
// of m directly is what makes ciphertext addition add the integers.
func EncodeUint64(g group.Group, m uint64) group.Point {
	return g.NewPoint().ScalarMult(g.NewScalar().SetUint64(m), g.Generator())
}

// DecodeUint64 recovers m from m*G by linear search over [0, max].
// It is meant for small tallies; the cost grows linearly with max.
// Returns ErrPlaintextOutOfRange if no m in range matches.
func DecodeUint64(g group.Group, p group.Point, max uint64) (uint64, error) {
	acc := g.NewPoint()
	gen := g.Generator()
	for m := uint64(0); ; m++ {
		if acc.Equal(p) {
			return m, nil
		}
		if m == max {
			break
		}
		acc = g.NewPoint().Add(acc, gen)
	}
	return 0, fmt.Errorf("%w: no m <= %d", ErrPlaintextOutOfRange, max)
}

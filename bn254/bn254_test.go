package bn254

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/f3rmion/elgamal-bn/group"
)

func TestScalar(t *testing.T) {
	g := New()

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		product := g.NewScalar().Mul(a, aInv)
		one := g.NewScalar().SetUint64(1)
		if !product.Equal(one) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		_, err := g.NewScalar().Invert(g.NewScalar())
		if err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		negA := g.NewScalar().Negate(a)

		if !g.NewScalar().Add(a, negA).IsZero() {
			t.Error("a + (-a) != 0")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)

		bytes := a.Bytes()
		if len(bytes) != 32 {
			t.Fatalf("expected 32 bytes, got %d", len(bytes))
		}
		restored, err := g.NewScalar().SetBytes(bytes)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("SetBytesReducesModOrder", func(t *testing.T) {
		// order + 5 must reduce to 5
		order := g.Order()
		buf := make([]byte, len(order))
		copy(buf, order)
		carry := uint16(5)
		for i := len(buf) - 1; i >= 0 && carry > 0; i-- {
			v := uint16(buf[i]) + carry
			buf[i] = byte(v)
			carry = v >> 8
		}
		s, _ := g.NewScalar().SetBytes(buf)
		if !s.Equal(g.NewScalar().SetUint64(5)) {
			t.Error("order+5 did not reduce to 5")
		}
	})

	t.Run("WideDigest", func(t *testing.T) {
		wide := make([]byte, 64)
		wide[63] = 7
		s, _ := g.NewScalar().SetBytes(wide)
		if !s.Equal(g.NewScalar().SetUint64(7)) {
			t.Error("64-byte big-endian 7 did not decode to 7")
		}
	})
}

func TestPoint(t *testing.T) {
	g := New()

	t.Run("AddSub", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		Q, _ := g.RandomPoint(rand.Reader)

		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)

		if !diff.Equal(P) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		negP := g.NewPoint().Negate(P)

		if !g.NewPoint().Add(P, negP).IsIdentity() {
			t.Error("P + (-P) != identity")
		}
	})

	t.Run("DoubleViaAdd", func(t *testing.T) {
		G := g.Generator()
		two := g.NewScalar().SetUint64(2)
		viaAdd := g.NewPoint().Add(G, G)
		viaMul := g.NewPoint().ScalarMult(two, G)
		if !viaAdd.Equal(viaMul) {
			t.Error("G+G != 2*G")
		}
	})

	t.Run("ScalarMultByZero", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		if !g.NewPoint().ScalarMult(g.NewScalar(), P).IsIdentity() {
			t.Error("0*P != identity")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)

		restored, err := g.NewPoint().SetBytes(P.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		if !g.NewPoint().IsIdentity() {
			t.Error("new point should be identity")
		}
		if g.Generator().IsIdentity() {
			t.Error("generator should not be identity")
		}
	})
}

func TestCoordinates(t *testing.T) {
	g := New()

	t.Run("KnownDouble", func(t *testing.T) {
		P := g.NewPoint().Add(g.Generator(), g.Generator())
		x, y, err := P.Coordinates()
		if err != nil {
			t.Fatal(err)
		}
		wantX := "030644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd3"
		wantY := "15ed738c0e0a7c92e7845f96b2ae9c0a68a6a449e3538fc7ff3ebf7a5a18a2c4"
		if got := hex.EncodeToString(x); got != wantX {
			t.Errorf("x = %s, want %s", got, wantX)
		}
		if got := hex.EncodeToString(y); got != wantY {
			t.Errorf("y = %s, want %s", got, wantY)
		}
	})

	t.Run("RepresentationIndependent", func(t *testing.T) {
		// P computed along two different paths has different Jacobian Z
		// but must project to the same affine bytes.
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s, g.Generator())
		Q, _ := g.RandomPoint(rand.Reader)
		viaDetour := g.NewPoint().Sub(g.NewPoint().Add(P, Q), Q)

		px, py, err := P.Coordinates()
		if err != nil {
			t.Fatal(err)
		}
		dx, dy, err := viaDetour.Coordinates()
		if err != nil {
			t.Fatal(err)
		}
		if hex.EncodeToString(px) != hex.EncodeToString(dx) || hex.EncodeToString(py) != hex.EncodeToString(dy) {
			t.Error("equal points produced different affine coordinates")
		}
	})

	t.Run("IdentityFails", func(t *testing.T) {
		_, _, err := g.NewPoint().Coordinates()
		if !errors.Is(err, group.ErrAffineConversion) {
			t.Errorf("expected ErrAffineConversion, got %v", err)
		}
	})

	t.Run("Roundtrip", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		x, y, err := P.Coordinates()
		if err != nil {
			t.Fatal(err)
		}
		restored, err := g.NewPoint().SetCoordinates(x, y)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(P) {
			t.Error("coordinates roundtrip failed")
		}
	})

	t.Run("OffCurveRejected", func(t *testing.T) {
		x := make([]byte, 32)
		y := make([]byte, 32)
		x[31] = 1
		y[31] = 3 // (1, 3) is not on y^2 = x^3 + 3
		_, err := g.NewPoint().SetCoordinates(x, y)
		if !errors.Is(err, group.ErrNotOnCurve) {
			t.Errorf("expected ErrNotOnCurve, got %v", err)
		}
	})

	t.Run("NonCanonicalRejected", func(t *testing.T) {
		x := make([]byte, 32)
		y := make([]byte, 32)
		for i := range x {
			x[i] = 0xff
		}
		y[31] = 2
		_, err := g.NewPoint().SetCoordinates(x, y)
		if !errors.Is(err, group.ErrNotOnCurve) {
			t.Errorf("expected ErrNotOnCurve, got %v", err)
		}
	})
}

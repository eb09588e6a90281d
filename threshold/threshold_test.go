package threshold

import (
	"crypto/rand"
	"errors"
	"fmt"
	"testing"

	"github.com/f3rmion/elgamal-bn/bjj"
	"github.com/f3rmion/elgamal-bn/bn254"
	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/group"
)

// runDKG runs a full DKG ceremony with all participants in process.
func runDKG(t *testing.T, th *Threshold) ([]*KeyShare, []*Round1Data) {
	t.Helper()
	total := th.Total()

	// Create participants
	participants := make([]*Participant, total)
	for i := 0; i < total; i++ {
		p, err := th.NewParticipant(rand.Reader, i+1)
		if err != nil {
			t.Fatalf("failed to create participant %d: %v", i+1, err)
		}
		participants[i] = p
	}

	// Round 1: Each participant broadcasts commitments
	broadcasts := make([]*Round1Data, total)
	for i, p := range participants {
		broadcasts[i] = p.Round1Broadcast()
	}

	// Round 1: Each participant sends private shares to others
	for i, sender := range participants {
		for j := 0; j < total; j++ {
			if i == j {
				continue // don't send to self
			}
			privateData, err := th.Round1PrivateSend(sender, j+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := th.Round2ReceiveShare(participants[j], privateData, broadcasts[i].Commitments); err != nil {
				t.Fatalf("participant %d failed to verify share from %d: %v", j+1, i+1, err)
			}
		}
	}

	// Finalize: Each participant computes their key share
	keyShares := make([]*KeyShare, total)
	for i, p := range participants {
		ks, err := th.Finalize(p, broadcasts)
		if err != nil {
			t.Fatalf("participant %d failed to finalize: %v", i+1, err)
		}
		keyShares[i] = ks
	}
	return keyShares, broadcasts
}

func newThreshold(t *testing.T, g group.Group, threshold, total int) *Threshold {
	t.Helper()
	scheme, err := elgamal.New(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	th, err := New(scheme, threshold, total)
	if err != nil {
		t.Fatal(err)
	}
	return th
}

func TestDKGAndDecrypt(t *testing.T) {
	for _, g := range []group.Group{bn254.New(), &bjj.BJJ{}} {
		t.Run(g.Name(), func(t *testing.T) {
			th := newThreshold(t, g, 2, 3)
			keyShares, broadcasts := runDKG(t, th)

			// Verify all participants have the same group key
			for i := 1; i < len(keyShares); i++ {
				if !keyShares[i].GroupKey.Equal(keyShares[0].GroupKey) {
					t.Error("participants have different group keys")
				}
			}

			// Verification keys derived from broadcasts match the shares
			for _, ks := range keyShares {
				if !th.VerificationKey(ks.ID, broadcasts).Equal(ks.VerificationKey()) {
					t.Errorf("verification key mismatch for participant %d", ks.ID)
				}
			}

			plaintext := elgamal.EncodeUint64(g, 42)
			ct, err := keyShares[0].GroupKey.Encrypt(rand.Reader, plaintext)
			if err != nil {
				t.Fatal(err)
			}

			shares := make([]*DecryptionShare, 2)
			for i, ks := range keyShares[:2] {
				shares[i], err = ks.DecryptShare(rand.Reader, ct)
				if err != nil {
					t.Fatal(err)
				}
			}

			vks := map[int]*elgamal.PublicKey{}
			for _, ks := range keyShares {
				vks[ks.ID] = th.VerificationKey(ks.ID, broadcasts)
			}

			pt, err := th.CombineVerified(ct, shares, vks)
			if err != nil {
				t.Fatal(err)
			}
			if !pt.Equal(plaintext) {
				t.Error("threshold decryption failed")
			}
		})
	}
}

func TestDecryptWithDifferentSubsets(t *testing.T) {
	th := newThreshold(t, &bjj.BJJ{}, 2, 4)
	keyShares, _ := runDKG(t, th)
	g := th.Scheme().Group()

	plaintext := elgamal.EncodeUint64(g, 1000)
	ct, err := keyShares[0].GroupKey.Encrypt(rand.Reader, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	subsets := [][]int{
		{0, 1},       // participants 1 and 2
		{0, 3},       // participants 1 and 4
		{2, 1},       // participants 3 and 2, out of order
		{1, 3},       // participants 2 and 4
		{0, 1, 2},    // participants 1, 2, and 3
		{0, 1, 2, 3}, // all participants
	}

	for _, subset := range subsets {
		t.Run(fmt.Sprint(subset), func(t *testing.T) {
			shares := make([]*DecryptionShare, len(subset))
			for i, idx := range subset {
				s, err := keyShares[idx].DecryptShare(rand.Reader, ct)
				if err != nil {
					t.Fatal(err)
				}
				shares[i] = s
			}

			pt, err := th.Combine(ct, shares)
			if err != nil {
				t.Fatal(err)
			}
			if !pt.Equal(plaintext) {
				t.Error("combined plaintext is wrong")
			}
		})
	}
}

func TestDecryptWithDifferentThresholds(t *testing.T) {
	configs := []struct {
		threshold int
		total     int
	}{
		{2, 3},
		{3, 5},
		{4, 7},
	}

	for _, cfg := range configs {
		name := fmt.Sprintf("%d_of_%d", cfg.threshold, cfg.total)
		t.Run(name, func(t *testing.T) {
			th := newThreshold(t, bn254.New(), cfg.threshold, cfg.total)
			keyShares, _ := runDKG(t, th)
			g := th.Scheme().Group()

			plaintext, _ := g.RandomPoint(rand.Reader)
			ct, err := keyShares[0].GroupKey.Encrypt(rand.Reader, plaintext)
			if err != nil {
				t.Fatal(err)
			}

			// Use the last t participants
			shares := make([]*DecryptionShare, 0, cfg.threshold)
			for _, ks := range keyShares[cfg.total-cfg.threshold:] {
				s, err := ks.DecryptShare(rand.Reader, ct)
				if err != nil {
					t.Fatal(err)
				}
				shares = append(shares, s)
			}

			pt, err := th.Combine(ct, shares)
			if err != nil {
				t.Fatal(err)
			}
			if !pt.Equal(plaintext) {
				t.Error("combined plaintext is wrong")
			}

			if _, err := th.Combine(ct, shares[:cfg.threshold-1]); !errors.Is(err, ErrNotEnoughShares) {
				t.Errorf("got %v, want ErrNotEnoughShares", err)
			}
		})
	}
}

func TestShareVerificationFailures(t *testing.T) {
	th := newThreshold(t, bn254.New(), 2, 3)
	keyShares, broadcasts := runDKG(t, th)
	g := th.Scheme().Group()

	ct, err := keyShares[0].GroupKey.Encrypt(rand.Reader, elgamal.EncodeUint64(g, 5))
	if err != nil {
		t.Fatal(err)
	}
	share, err := keyShares[0].DecryptShare(rand.Reader, ct)
	if err != nil {
		t.Fatal(err)
	}
	vk1 := th.VerificationKey(1, broadcasts)
	vk2 := th.VerificationKey(2, broadcasts)

	t.Run("Valid", func(t *testing.T) {
		if err := VerifyShare(vk1, ct, share); err != nil {
			t.Errorf("valid share rejected: %v", err)
		}
	})

	t.Run("WrongVerificationKey", func(t *testing.T) {
		if err := VerifyShare(vk2, ct, share); !errors.Is(err, elgamal.ErrVerification) {
			t.Errorf("got %v, want ErrVerification", err)
		}
	})

	t.Run("TamperedShare", func(t *testing.T) {
		bad := *share
		bad.Share = g.NewPoint().Add(share.Share, g.Generator())
		if err := VerifyShare(vk1, ct, &bad); !errors.Is(err, elgamal.ErrVerification) {
			t.Errorf("got %v, want ErrVerification", err)
		}

		other, _ := keyShares[1].DecryptShare(rand.Reader, ct)
		vks := map[int]*elgamal.PublicKey{1: vk1, 2: vk2}
		if _, err := th.CombineVerified(ct, []*DecryptionShare{&bad, other}, vks); !errors.Is(err, elgamal.ErrVerification) {
			t.Errorf("got %v, want ErrVerification", err)
		}
	})

	t.Run("MissingVerificationKey", func(t *testing.T) {
		other, _ := keyShares[2].DecryptShare(rand.Reader, ct)
		vks := map[int]*elgamal.PublicKey{1: vk1}
		if _, err := th.CombineVerified(ct, []*DecryptionShare{share, other}, vks); err == nil {
			t.Error("expected error for missing verification key")
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		if _, err := th.Combine(ct, []*DecryptionShare{share, share}); !errors.Is(err, ErrDuplicateShare) {
			t.Errorf("got %v, want ErrDuplicateShare", err)
		}
	})
}

func TestDKGFailures(t *testing.T) {
	th := newThreshold(t, bn254.New(), 2, 3)

	p1, _ := th.NewParticipant(rand.Reader, 1)
	p2, _ := th.NewParticipant(rand.Reader, 2)

	t.Run("InvalidShare", func(t *testing.T) {
		data, err := th.Round1PrivateSend(p1, 2)
		if err != nil {
			t.Fatal(err)
		}
		data.Share = th.Scheme().Group().NewScalar().Add(data.Share, th.scalarFromInt(1))
		err = th.Round2ReceiveShare(p2, data, p1.Round1Broadcast().Commitments)
		if !errors.Is(err, ErrInvalidShare) {
			t.Errorf("got %v, want ErrInvalidShare", err)
		}
	})

	t.Run("WrongRecipient", func(t *testing.T) {
		data, err := th.Round1PrivateSend(p1, 3)
		if err != nil {
			t.Fatal(err)
		}
		err = th.Round2ReceiveShare(p2, data, p1.Round1Broadcast().Commitments)
		if !errors.Is(err, ErrInvalidShare) {
			t.Errorf("got %v, want ErrInvalidShare", err)
		}
	})

	t.Run("IncompleteFinalize", func(t *testing.T) {
		broadcasts := []*Round1Data{p1.Round1Broadcast(), p2.Round1Broadcast()}
		if _, err := th.Finalize(p2, broadcasts); err == nil {
			t.Error("expected error finalizing without all broadcasts")
		}
	})

	t.Run("PrivateSendRecipient", func(t *testing.T) {
		for _, id := range []int{0, -1, 4, 1} {
			if _, err := th.Round1PrivateSend(p1, id); !errors.Is(err, ErrInvalidShare) {
				t.Errorf("recipient %d: got %v, want ErrInvalidShare", id, err)
			}
		}
	})

	t.Run("ShareFromSelfOrUnknown", func(t *testing.T) {
		for _, from := range []int{2, 0, 4} {
			// A correctly evaluated share under p2's own commitments.
			data := &Round1PrivateData{
				FromID: from,
				ToID:   2,
				Share:  th.evalPolynomial(p2.coefficients, th.scalarFromInt(2)),
			}
			if err := th.Round2ReceiveShare(p2, data, p2.Round1Broadcast().Commitments); !errors.Is(err, ErrInvalidShare) {
				t.Errorf("sender %d: got %v, want ErrInvalidShare", from, err)
			}
		}
		if len(p2.receivedShares) != 0 {
			t.Errorf("stored %d rejected shares", len(p2.receivedShares))
		}
	})

	t.Run("FinalizeMissingDealer", func(t *testing.T) {
		q1, _ := th.NewParticipant(rand.Reader, 1)
		q2, _ := th.NewParticipant(rand.Reader, 2)
		q3, _ := th.NewParticipant(rand.Reader, 3)
		data, err := th.Round1PrivateSend(q2, 1)
		if err != nil {
			t.Fatal(err)
		}
		if err := th.Round2ReceiveShare(q1, data, q2.Round1Broadcast().Commitments); err != nil {
			t.Fatal(err)
		}
		// Right share count, but the extra entry is q1's own evaluation.
		q1.receivedShares[1] = th.evalPolynomial(q1.coefficients, th.scalarFromInt(1))

		broadcasts := []*Round1Data{q1.Round1Broadcast(), q2.Round1Broadcast(), q3.Round1Broadcast()}
		if _, err := th.Finalize(q1, broadcasts); err == nil {
			t.Error("expected error finalizing without dealer 3's share")
		}
	})

	t.Run("ParticipantID", func(t *testing.T) {
		if _, err := th.NewParticipant(rand.Reader, 0); err == nil {
			t.Error("expected error for ID 0")
		}
		if _, err := th.NewParticipant(rand.Reader, 4); err == nil {
			t.Error("expected error for ID > total")
		}
	})
}

func TestThresholdValidation(t *testing.T) {
	scheme, err := elgamal.New(&bjj.BJJ{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("ThresholdTooLow", func(t *testing.T) {
		_, err := New(scheme, 1, 3)
		if err == nil {
			t.Error("expected error for threshold < 2")
		}
	})

	t.Run("TotalLessThanThreshold", func(t *testing.T) {
		_, err := New(scheme, 3, 2)
		if err == nil {
			t.Error("expected error for total < threshold")
		}
	})

	t.Run("NilScheme", func(t *testing.T) {
		if _, err := New(nil, 2, 3); err == nil {
			t.Error("expected error for nil scheme")
		}
	})
}

// Package session provides a high-level API for homomorphic tallies. It
// wraps the primitives in the [elgamal] package with an interface that
// accumulates ciphertexts, enforces that they share one public key, and
// opens the result exactly once with a proof of correct decryption.
//
// # Collecting
//
// A collector creates a session for the tally key and adds each
// submitted ciphertext:
//
//	s, err := session.New(pk, logger)
//	if err != nil {
//		return err
//	}
//
//	// For each voter:
//	ct, _ := pk.Encrypt(rand.Reader, elgamal.EncodeUint64(g, 1))
//	if err := s.Add(ctx, ct); err != nil {
//		return err // ErrKeyMismatch, ErrConsumed
//	}
//
// # Opening
//
// The key holder opens the session. The opening carries the aggregate
// ciphertext, its decryption and a proof anyone can check:
//
//	o, _ := session.NewOpener(sk, logger)
//	op, err := o.Open(ctx, rand.Reader, s)
//	if err != nil {
//		return err
//	}
//
//	// Anyone holding pk:
//	if err := session.VerifyOpening(pk, op); err != nil {
//		return err
//	}
//	votes, err := op.Value(maxVotes)
//
// A Session can be opened only once. Calling Open a second time returns
// ErrConsumed, and Add is rejected after opening.
//
// # Transport Agnostic
//
// This package does not handle network communication. Ciphertexts and
// proofs can be moved between parties with [elgamal.Ciphertext.MarshalBinary]
// and [elgamal.Proof.MarshalBinary].
package session

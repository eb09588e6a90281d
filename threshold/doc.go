// Package threshold implements t-of-n ElGamal decryption over the
// [elgamal] scheme.
//
// No single participant ever holds the decryption key. A public key is
// created by distributed key generation, ciphertexts are formed against
// it with the ordinary [elgamal.PublicKey.Encrypt], and any t
// participants can jointly decrypt.
//
// # Distributed Key Generation (DKG)
//
// Each participant deals a random polynomial of degree t-1 (Pedersen's
// DKG with Feldman commitments):
//
//  1. Each participant broadcasts commitments to its coefficients using
//     [Participant.Round1Broadcast].
//  2. Each participant sends private shares to all other participants
//     using [Threshold.Round1PrivateSend].
//  3. Each participant verifies received shares against the broadcast
//     commitments using [Threshold.Round2ReceiveShare].
//  4. Each participant computes its key share using [Threshold.Finalize].
//
// # Threshold Decryption
//
//  1. Each of t participants computes x_i*Ephemeral with a proof using
//     [KeyShare.DecryptShare].
//  2. Anyone checks each share against [Threshold.VerificationKey] using
//     [VerifyShare].
//  3. The shares are interpolated into the plaintext using
//     [Threshold.Combine] or [Threshold.CombineVerified].
//
// # Example
//
//	th, _ := threshold.New(scheme, 2, 3)
//	// ... run DKG, obtaining keyShares and broadcasts
//
//	ct, _ := keyShares[0].GroupKey.Encrypt(rand.Reader, elgamal.EncodeUint64(g, 7))
//
//	s1, _ := keyShares[0].DecryptShare(rand.Reader, ct)
//	s3, _ := keyShares[2].DecryptShare(rand.Reader, ct)
//
//	vks := map[int]*elgamal.PublicKey{
//		1: th.VerificationKey(1, broadcasts),
//		3: th.VerificationKey(3, broadcasts),
//	}
//	pt, err := th.CombineVerified(ct, []*threshold.DecryptionShare{s1, s3}, vks)
//
// # Security
//
// The DKG assumes authenticated broadcast and private point-to-point
// channels, neither of which this package provides. Shares are checked
// against commitments, but a participant that withholds its shares
// stalls the ceremony.
package threshold

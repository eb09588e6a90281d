// Package elgamal implements additively homomorphic ElGamal encryption
// over an arbitrary prime-order group, together with a non-interactive
// proof that a ciphertext decrypts to a claimed plaintext.
//
// Plaintexts are group elements. To encrypt an integer m, encrypt
// m*G (see [EncodeUint64]); ciphertext addition then adds the integers.
//
// # Encryption
//
// A key pair is x and Y = x*G. Encrypting a point P with fresh
// randomness k yields the pair
//
//	Ephemeral = k*G
//	Masked    = P + k*Y
//
// and decryption computes Masked - x*Ephemeral.
//
// # Homomorphic operations
//
// [Ciphertext.Add], [Ciphertext.Subtract], [Ciphertext.Scale] and
// [Ciphertext.Unscale] act componentwise and return new ciphertexts:
//
//	sum := ct1.Add(ct2)         // decrypts to P1 + P2
//	tripled := ct1.Scale(three) // decrypts to 3*P1
//
// # Decryption proofs
//
// [SecretKey.ProveCorrectDecryption] produces a Chaum-Pedersen style
// Sigma proof made non-interactive with the Fiat-Shamir transform. The
// challenge hashes the affine x || y of
//
//	plaintext, Ephemeral, Masked, A1, A2, G, Y
//
// with the scheme's [Hasher]. Keccak-256 is the default and matches
// keccak256(abi.encodePacked(...)) over uint256 words, so a proof can be
// checked on chain. SHA-512 and BLAKE2b-512 are also available.
//
// # Example
//
//	scheme, _ := elgamal.New(bn254.New(), &elgamal.Keccak256Hasher{})
//	sk, _ := scheme.NewSecretKey(rand.Reader)
//
//	ct, _ := sk.PublicKey().Encrypt(rand.Reader, elgamal.EncodeUint64(scheme.Group(), 42))
//	pt := sk.Decrypt(ct)
//
//	proof, _ := sk.ProveCorrectDecryption(rand.Reader, ct, pt)
//	err := sk.PublicKey().VerifyCorrectDecryption(proof, ct, pt)
//
// # Text encodings
//
// Points and scalars can be rendered as 0x-prefixed fixed-width hex, the
// form used in Solidity calldata, or as base-10 integers. Points on a
// short Weierstrass curve have no affine form at infinity, so encoding
// the identity fails with [group.ErrAffineConversion].
package elgamal

// Package vectors generates and checks test-vector bundles for the
// ElGamal decryption proof. A bundle lists, per vector, the public key,
// the encoded integer plaintext, its ciphertext and a decryption proof,
// all as text coordinates, so that implementations in other languages
// and on-chain verifiers can be checked against this one.
//
// Bundles are serialized as JSON or CBOR. Generation with a seeded
// [drbg.Source] is fully deterministic.
package vectors

// Package bn254 provides the G1 group of the BN254 pairing-friendly curve
// as an implementation of the [group.Group] interface.
//
// BN254 (also known as alt_bn128) is the curve behind the Ethereum
// precompiled contracts for point addition, scalar multiplication and
// pairing checks, which makes it the natural choice when proofs must be
// verified on chain.
//
// This package wraps the implementation from gnark-crypto, providing a
// clean interface that satisfies [group.Group], [group.Scalar], and
// [group.Point].
//
// # Curve Parameters
//
// G1 is defined by the short Weierstrass equation
//
//	y^2 = x^3 + 3
//
// over the base field Fp, with generator (1, 2). The group has prime order
//
//	21888242871839275222246405745257275088548364400416034343098795764708577108545
//
// which is the modulus of the scalar field Fr.
//
// # Coordinates
//
// Points are held in Jacobian coordinates. [Point.Coordinates] projects
// to the unique affine representative as two 32-byte big-endian values,
// matching the abi.encodePacked layout of a Solidity (uint256, uint256)
// pair. The point at infinity has no affine form and is reported with
// [group.ErrAffineConversion].
package bn254

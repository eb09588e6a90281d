// Package group defines abstract interfaces for the prime-order groups
// used by the ElGamal scheme and its decryption proofs.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed for ElGamal and Sigma protocols:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// All operations that can fail return errors rather than panicking, making
// error handling explicit and predictable.
//
// # Affine Coordinates
//
// Points may be held in any internal coordinate system (the bn254 package
// uses Jacobian coordinates). Whenever a point is hashed or serialized it
// must first be projected with [Point.Coordinates], which yields the unique
// affine representative or [ErrAffineConversion] when none exists.
//
// # Implementing a Group
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the bn254 package for the default implementation and the bjj package
// for Baby Jubjub.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are generated from the supplied reader only
//   - Invalid curve points are rejected in SetBytes and SetCoordinates
package group

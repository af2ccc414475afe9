// SPDX-License-Identifier: MIT

// Package lanczos tridiagonalizes a Hermitian operator by repeated
// matrix-vector products.
//
// Run drives the iteration as a small state machine:
//
//	Init -> Iterating -> Converged | InvariantSubspace | MaxIterationsReached
//
// The Krylov vectors are not stored. The coefficients are collected in a
// Tmatrix, whose spectrum approximates the extremal spectrum of the
// operator. A vector expressed in the Krylov basis (a Ritz vector, or the
// result of a Krylov exponential) is rebuilt by a second pass that
// re-generates the basis from the stored coefficients: see Reconstruct.
//
// Non-convergence is not an error. The Criterion of a Result reports why the
// iteration stopped.
package lanczos

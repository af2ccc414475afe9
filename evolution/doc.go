// SPDX-License-Identifier: MIT

// Package evolution computes exp(tau H) v for a Hermitian operator H with
// the Krylov method: a Lanczos run builds a small tridiagonal T, the dense
// exponential exp(tau T) is formed, and the result ||v|| V exp(tau T) e_1 is
// assembled in a second pass over the Krylov basis V.
//
// The iteration stops once the a-posteriori estimate
//
//	beta_m |e_m^T exp(tau T_m) e_1| ||v||
//
// drops below the requested precision.
package evolution

// SPDX-License-Identifier: MIT

// Package matrix provides the dense operator matrices produced by
// algebra.Matrix and consumed by exact cross-checks.
//
// What:
//   - Dense[T]: row-major real (float64) or complex (complex128) matrix with
//     safe accessors (At/Set/Add return errors instead of panicking).
//   - Validators: square shape, vector length, Hermiticity within eps.
//   - EigenvaluesHermitian: full spectrum of a Hermitian matrix, ascending,
//     computed with gonum. Complex matrices are embedded into a real
//     symmetric matrix of twice the size.
//
// Memory:
//   - NewDense refuses allocations larger than a fraction of the physical
//     memory reported by gopsutil (DefaultMemoryFraction). Dense operator
//     matrices grow as dim^2 and are easy to request by accident.
//
// Determinism:
//   - All loops run in fixed row-major order; no map iteration, no
//     randomness.
package matrix

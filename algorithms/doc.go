// SPDX-License-Identifier: MIT

// Package algorithms is the entry point of the library: ground states,
// Lanczos spectra, dense spectra and real or imaginary time evolution of an
// operator sum on a block.
//
// Every function picks real (float64) arithmetic when the compiled
// operator, the block's irrep and the input state are all real, and
// complex128 otherwise. WithComplex forces complex arithmetic.
//
// Functions on distributed blocks are collective: every rank must call them
// with the same arguments.
package algorithms

// SPDX-License-Identifier: MIT

// Package xdiag is an exact-diagonalization library for quantum many-body
// Hamiltonians on spin-1/2, electron (Hubbard) and t-J Hilbert spaces.
//
// It computes ground states, Lanczos spectra and real or imaginary time
// evolution without ever storing the Hamiltonian: operators are compiled
// once per block and applied matrix-free, in parallel over goroutines and
// optionally distributed over ranks.
//
// The module is organized leaf to root:
//
//	combinatorics/  bit-pattern combinations, ranking, LinTable lookup
//	symmetries/     permutations, groups, irreps, orbits and norms
//	blocks/         Spinhalf, Electron, TJ and SpinhalfDistributed bases
//	operators/      Op, OpSum, couplings and the term compiler
//	algebra/        Apply, Matrix, BlockOut, Operator
//	lanczos/        Tmatrix, Run, Reconstruct, Eig0
//	evolution/      Krylov exp(tau H) v
//	states/         wave functions and their checkpoint codec
//	algorithms/     Eigval0, Eig0, EigvalsLanczos, TimeEvolve, ImagTimeEvolve
//	lattice/        chains and square lattices, bonds, translations
//	comm/           communicator interface and an in-process world
//	config/, logger/  environment configuration and zerolog setup
//
// Quick example, the ground-state energy of a Heisenberg ring:
//
//	block, _ := blocks.NewSpinhalf(16, blocks.WithNup(8))
//	ring, _ := lattice.Chain(16)
//	ops := ring.OpSum("SdotS", operators.Real(1), lattice.Nearest)
//	e0, _ := algorithms.Eigval0(ops, block)
package xdiag

// SPDX-License-Identifier: MIT

// Package blocks defines the Hilbert-space blocks the operator engine acts
// on: spin-1/2 sectors, electron (Hubbard) sectors, t-J sectors and a
// spin-1/2 sector distributed over the ranks of a comm.Comm.
//
// A block fixes the number of sites, optionally the conserved particle
// numbers, and optionally a permutation group with a one-dimensional
// irreducible representation. Blocks are immutable after construction and
// may be shared freely between goroutines.
//
// Ordering of basis states:
//   - Spinhalf without Nup: all 2^n patterns in ascending order.
//   - Spinhalf with Nup: Combinations(n, nup) in ascending order.
//   - Electron: index = idx_up*size_dn + idx_dn; configurations are packed
//     as up | dn<<n.
//   - TJ: as Electron, with the down pattern ranked after compressing it
//     onto the sites left empty by the up pattern.
//   - Symmetric blocks: orbit representatives, in the order of the
//     underlying plain basis, whose norm is nonzero.
//   - SpinhalfDistributed: owned prefixes ascending, postfixes ascending.
//
// The engine never inspects concrete block types; it works against the
// Basis view returned by Block.Basis.
package blocks

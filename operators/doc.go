// SPDX-License-Identifier: MIT

// Package operators holds operator sums and compiles them against a block.
//
// An OpSum is an ordered list of Op terms, each with a type tag, a
// coupling and a tuple of sites, plus a table of named couplings that are
// resolved late, at Compile time.
//
// Compile validates every term against the vocabulary of the block kind,
// resolves couplings, drops terms whose coupling is within the precision
// of zero and lowers the rest into three kernel shapes the apply engine
// understands:
//   - Diagonal: coefficient times a function of the configuration.
//   - Monomial: coefficient times a product of elementary creation and
//     annihilation operators, applied right to left. For fermionic blocks
//     each elementary operator carries the Jordan-Wigner sign of the bits
//     below it, with ups on bits [0,n) and downs on bits [n,2n).
//   - Local matrix: an explicit 2x2 or 4x4 matrix on one or two spins.
package operators

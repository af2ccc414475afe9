// SPDX-License-Identifier: MIT

// Package combinatorics enumerates and ranks bit patterns.
//
// A bit pattern is a fixed-width unsigned integer whose bit i encodes the
// local degree of freedom on site i. The package provides:
//
//   - Combinations(n, k): all n-bit patterns with exactly k set bits, in
//     ascending numeric order, together with an exact rank/unrank pair
//     (NForPattern / NthPattern) based on partial binomial sums.
//   - Subsets(n): all 2^n patterns in ascending order (identity ranking).
//   - LinTable: a precomputed table of partial binomial sums that ranks a
//     fixed-popcount pattern in O(popcount).
//   - Bit helpers (Popcount, Gbit, Gbits, Pext, Pdep, Parity).
//
// Ranking follows the combinatorial number system: a pattern whose set bits
// sit at positions c1 < c2 < ... < ck has rank C(c1,1) + C(c2,2) + ... +
// C(ck,k). Ascending numeric order and colexicographic order coincide, so
// the rank of a pattern equals its position in Combinations(n, k).
//
// Complexity quicksheet:
//   - Binomial: O(1) table lookup (n <= 64).
//   - NextPattern: O(1); NthPattern: O(n); NForPattern: O(popcount).
//   - NewLinTable: O(n*k) time and space; LinTable.Index: O(popcount).
package combinatorics

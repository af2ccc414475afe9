// SPDX-License-Identifier: MIT

package combinatorics

import "math/bits"

// NextPattern returns the numerically next pattern with the same popcount.
//
// Implementation (lowest-set-bit isolation):
//   - c = v & -v isolates the lowest set bit.
//   - r = v + c carries it into the next zero above the lowest block of ones.
//   - the ones shifted out of that block are re-inserted at the bottom:
//     r | (((v ^ r) / c) >> 2).
//
// v must be non-zero. The successor of the largest pattern of a given width
// overflows; iterators stop before calling NextPattern on it.
func NextPattern[B Word](v B) B {
	c := v & -v
	r := v + c
	return r | (((v ^ r) / c) >> 2)
}

// NthPattern returns the i-th pattern (0-based, ascending order) among the
// n-bit patterns with k set bits. It is the exact inverse of NForPattern.
//
// Contract: 0 <= i < Binomial(n,k). Out-of-range i yields an unspecified
// pattern; bases validate ranges before calling.
//
// Complexity: O(n).
func NthPattern[B Word](i int64, n, k int) B {
	var state B
	rest := i
	p := n - 1
	for j := k; j >= 1; j-- {
		// Largest p with C(p,j) <= rest; C(p,j) == 0 for p < j ends the scan.
		for p >= 0 && Binomial(p, j) > rest {
			p--
		}
		if p < 0 {
			break
		}
		state |= B(1) << p
		rest -= Binomial(p, j)
		p--
	}
	return state
}

// NForPattern returns the rank of v among the n-bit patterns with k set
// bits, i.e. its position in Combinations(n,k). It returns -1 when v has a
// popcount other than k or bits at or above position n.
//
// Complexity: O(popcount(v)).
func NForPattern[B Word](v B, n, k int) int64 {
	if Popcount(v) != k || (n < Width[B]() && v>>n != 0) {
		return -1
	}
	var idx int64
	j := 1
	for s := uint64(v); s != 0; s &= s - 1 {
		idx += Binomial(bits.TrailingZeros64(s), j)
		j++
	}
	return idx
}

// FirstPattern returns the smallest n-bit pattern with k set bits.
func FirstPattern[B Word](k int) B {
	return Mask[B](k)
}

// LastPattern returns the largest n-bit pattern with k set bits.
func LastPattern[B Word](n, k int) B {
	return Mask[B](k) << (n - k)
}

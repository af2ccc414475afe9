// SPDX-License-Identifier: MIT

package combinatorics

import "math/bits"

// LinTable ranks n-bit patterns with k set bits in O(popcount).
//
// The table stores the partial binomial sums C(pos, j) laid out as
// table[pos*(k+1) + j]. Index walks the set bits from the most significant
// to the least significant one; the bit seen after `seen` higher bits is
// the (k-seen)-th set bit from below and contributes C(pos, k-seen).
//
// A LinTable is immutable once built and can be shared by every block with
// the same (n,k) sector.
type LinTable struct {
	n, k  int
	size  int64
	table []int64
}

// NewLinTable builds the table for (n,k).
//
// Errors:
//   - ErrInvalidSites when n is outside [0, 64].
//   - ErrInvalidParticles when k is outside [0, n].
//
// Complexity: O(n*k) time and space.
func NewLinTable(n, k int) (*LinTable, error) {
	if n < 0 || n > MaxSites {
		return nil, combinatoricsErrorf("NewLinTable", n, k, ErrInvalidSites)
	}
	if k < 0 || k > n {
		return nil, combinatoricsErrorf("NewLinTable", n, k, ErrInvalidParticles)
	}
	stride := k + 1
	table := make([]int64, n*stride)
	for pos := 0; pos < n; pos++ {
		for j := 0; j <= k; j++ {
			table[pos*stride+j] = Binomial(pos, j)
		}
	}
	return &LinTable{n: n, k: k, size: Binomial(n, k), table: table}, nil
}

// N returns the pattern width.
func (t *LinTable) N() int { return t.n }

// K returns the popcount of the ranked patterns.
func (t *LinTable) K() int { return t.k }

// Size returns Binomial(n,k).
func (t *LinTable) Size() int64 { return t.size }

// Index returns the rank of state in [0, Size()).
// state must have exactly k set bits below position n.
func (t *LinTable) Index(state uint64) int64 {
	var idx int64
	stride := t.k + 1
	seen := 0
	for s := state; s != 0 && seen < t.k; seen++ {
		pos := 63 - bits.LeadingZeros64(s)
		idx += t.table[pos*stride+t.k-seen]
		s &^= uint64(1) << pos
	}
	return idx
}

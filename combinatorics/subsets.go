// SPDX-License-Identifier: MIT

package combinatorics

import "iter"

// maxSubsetSites keeps 2^n representable as a positive int64 index.
const maxSubsetSites = 62

// Subsets enumerates all 2^n patterns of width n in ascending order.
// Rank and pattern coincide.
type Subsets[B Word] struct {
	n    int
	size int64
}

// NewSubsets validates n against the width of B.
func NewSubsets[B Word](n int) (Subsets[B], error) {
	if n < 0 || n > Width[B]() || n > maxSubsetSites {
		return Subsets[B]{}, combinatoricsErrorf("NewSubsets", n, 0, ErrInvalidSites)
	}
	return Subsets[B]{n: n, size: int64(1) << n}, nil
}

// N returns the pattern width.
func (s Subsets[B]) N() int { return s.n }

// Size returns 2^n.
func (s Subsets[B]) Size() int64 { return s.size }

// All yields every pattern with its rank.
func (s Subsets[B]) All() iter.Seq2[int64, B] {
	return s.Range(0, s.size)
}

// Range yields the patterns with rank in [begin, end).
func (s Subsets[B]) Range(begin, end int64) iter.Seq2[int64, B] {
	begin = max(begin, 0)
	end = min(end, s.size)
	return func(yield func(int64, B) bool) {
		for i := begin; i < end; i++ {
			if !yield(i, B(i)) {
				return
			}
		}
	}
}

// Index returns the rank of state, which is the state itself.
func (s Subsets[B]) Index(state B) int64 { return int64(state) }

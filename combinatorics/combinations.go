// SPDX-License-Identifier: MIT

package combinatorics

import "iter"

// Combinations is the lazy, restartable sequence of all n-bit patterns with
// exactly k set bits in strictly ascending numeric order.
// The value is immutable and safe for concurrent use; each call to All or
// Range starts an independent walk.
type Combinations[B Word] struct {
	n, k int
	size int64
}

// NewCombinations validates (n,k) against the width of B.
//
// Errors:
//   - ErrInvalidSites when n < 0 or n exceeds the width of B.
//   - ErrInvalidParticles when k < 0 or k > n.
func NewCombinations[B Word](n, k int) (Combinations[B], error) {
	if n < 0 || n > Width[B]() {
		return Combinations[B]{}, combinatoricsErrorf("NewCombinations", n, k, ErrInvalidSites)
	}
	if k < 0 || k > n {
		return Combinations[B]{}, combinatoricsErrorf("NewCombinations", n, k, ErrInvalidParticles)
	}
	return Combinations[B]{n: n, k: k, size: Binomial(n, k)}, nil
}

// N returns the pattern width.
func (c Combinations[B]) N() int { return c.n }

// K returns the number of set bits of every pattern.
func (c Combinations[B]) K() int { return c.k }

// Size returns Binomial(n,k).
func (c Combinations[B]) Size() int64 { return c.size }

// All yields (rank, pattern) pairs for the whole sequence.
func (c Combinations[B]) All() iter.Seq2[int64, B] {
	return c.Range(0, c.size)
}

// Range yields the patterns with rank in [begin, end). It starts with an
// O(n) unrank and continues with O(1) NextPattern steps, which makes it the
// unit of work for parallel enumeration.
func (c Combinations[B]) Range(begin, end int64) iter.Seq2[int64, B] {
	begin = max(begin, 0)
	end = min(end, c.size)
	return func(yield func(int64, B) bool) {
		if begin >= end {
			return
		}
		state := NthPattern[B](begin, c.n, c.k)
		for i := begin; i < end; i++ {
			if !yield(i, state) {
				return
			}
			if i+1 < end {
				state = NextPattern(state)
			}
		}
	}
}

// Index returns the rank of state.
func (c Combinations[B]) Index(state B) int64 {
	return NForPattern(state, c.n, c.k)
}

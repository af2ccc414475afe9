// SPDX-License-Identifier: MIT

package symmetries

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Permutation is a bijection on site indices {0, ..., n-1}.
// The zero value is the empty permutation on zero sites.
type Permutation struct {
	perm []int
	inv  []int
}

// NewPermutation validates array and returns the permutation it describes.
//
// Errors:
//   - ErrNotBijective when an entry is out of range or repeated.
func NewPermutation(array []int) (Permutation, error) {
	n := len(array)
	inv := make([]int, n)
	for i := range inv {
		inv[i] = -1
	}
	for i, p := range array {
		if p < 0 || p >= n || inv[p] != -1 {
			return Permutation{}, symmetriesErrorf("NewPermutation",
				fmt.Errorf("entry %d -> %d: %w", i, p, ErrNotBijective))
		}
		inv[p] = i
	}
	return Permutation{perm: slices.Clone(array), inv: inv}, nil
}

// MustPermutation is NewPermutation for literals known to be valid.
// It panics on invalid input.
func MustPermutation(array []int) Permutation {
	p, err := NewPermutation(array)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity returns the identity permutation on n sites.
func Identity(n int) Permutation {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return Permutation{perm: perm, inv: slices.Clone(perm)}
}

// Size returns the number of sites.
func (p Permutation) Size() int { return len(p.perm) }

// At returns perm[i].
func (p Permutation) At(i int) int { return p.perm[i] }

// Array returns a copy of the permutation array.
func (p Permutation) Array() []int { return slices.Clone(p.perm) }

// Apply relabels the bits of state: bit i of the result is bit perm[i] of
// state. Bits at positions >= Size() are dropped.
func (p Permutation) Apply(state uint64) uint64 {
	var res uint64
	for i, src := range p.perm {
		res |= ((state >> src) & 1) << i
	}
	return res
}

// Mul returns the composition that applies q first and then p.
func (p Permutation) Mul(q Permutation) Permutation {
	n := len(p.perm)
	perm := make([]int, n)
	inv := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = q.perm[p.perm[i]]
	}
	for i, v := range perm {
		inv[v] = i
	}
	return Permutation{perm: perm, inv: inv}
}

// Inverse returns the functional inverse of p.
func (p Permutation) Inverse() Permutation {
	return Permutation{perm: slices.Clone(p.inv), inv: slices.Clone(p.perm)}
}

// Equal reports whether p and q are the same permutation.
func (p Permutation) Equal(q Permutation) bool {
	return slices.Equal(p.perm, q.perm)
}

// IsIdentity reports whether p maps every site to itself.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.perm {
		if i != v {
			return false
		}
	}
	return true
}

// String formats p as [p0 p1 ...].
func (p Permutation) String() string {
	return fmt.Sprint(p.perm)
}

// key is a compact map key used for group lookups.
func (p Permutation) key() string {
	var sb strings.Builder
	for i, v := range p.perm {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

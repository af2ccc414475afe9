// SPDX-License-Identifier: MIT

package symmetries

import "fmt"

// PermutationGroup is a closed set of permutations on the same sites with
// precomputed inverse and multiplication tables.
type PermutationGroup struct {
	nsites   int
	elems    []Permutation
	index    map[string]int
	inverse  []int
	mult     []int // mult[i*n+j] = index of elems[i].Mul(elems[j])
	identity int
}

// NewPermutationGroup validates perms and builds the lookup tables.
//
// Implementation:
//   - Stage 1: non-empty, equal sizes, no duplicates.
//   - Stage 2: identity present.
//   - Stage 3: closure; every product is looked up and stored in the
//     multiplication table, inverses follow from it.
//
// Errors:
//   - ErrEmptyGroup, ErrSizeMismatch, ErrDuplicateElement, ErrNoIdentity,
//     ErrNotClosed.
//
// Complexity: O(|G|^2 * n) time, O(|G|^2) space.
func NewPermutationGroup(perms []Permutation) (*PermutationGroup, error) {
	if len(perms) == 0 {
		return nil, symmetriesErrorf("NewPermutationGroup", ErrEmptyGroup)
	}
	nsites := perms[0].Size()
	g := &PermutationGroup{
		nsites:   nsites,
		elems:    make([]Permutation, len(perms)),
		index:    make(map[string]int, len(perms)),
		identity: -1,
	}
	for i, p := range perms {
		if p.Size() != nsites {
			return nil, symmetriesErrorf("NewPermutationGroup",
				fmt.Errorf("element %d acts on %d sites, want %d: %w", i, p.Size(), nsites, ErrSizeMismatch))
		}
		key := p.key()
		if _, dup := g.index[key]; dup {
			return nil, symmetriesErrorf("NewPermutationGroup",
				fmt.Errorf("element %d %v: %w", i, p, ErrDuplicateElement))
		}
		g.index[key] = i
		g.elems[i] = p
		if p.IsIdentity() {
			g.identity = i
		}
	}
	if g.identity < 0 {
		return nil, symmetriesErrorf("NewPermutationGroup", ErrNoIdentity)
	}

	n := len(perms)
	g.mult = make([]int, n*n)
	g.inverse = make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := g.elems[i].Mul(g.elems[j])
			k, ok := g.index[prod.key()]
			if !ok {
				return nil, symmetriesErrorf("NewPermutationGroup",
					fmt.Errorf("%v * %v: %w", g.elems[i], g.elems[j], ErrNotClosed))
			}
			g.mult[i*n+j] = k
			if k == g.identity {
				g.inverse[i] = j
			}
		}
	}
	return g, nil
}

// GeneratedGroup returns the smallest group containing generators.
// With no generators the group is trivial on zero sites.
func GeneratedGroup(generators ...Permutation) (*PermutationGroup, error) {
	if len(generators) == 0 {
		return NewPermutationGroup([]Permutation{Identity(0)})
	}
	nsites := generators[0].Size()
	for i, gen := range generators {
		if gen.Size() != nsites {
			return nil, symmetriesErrorf("GeneratedGroup",
				fmt.Errorf("generator %d: %w", i, ErrSizeMismatch))
		}
	}
	id := Identity(nsites)
	elems := []Permutation{id}
	seen := map[string]bool{id.key(): true}
	for head := 0; head < len(elems); head++ {
		for _, gen := range generators {
			next := gen.Mul(elems[head])
			if key := next.key(); !seen[key] {
				seen[key] = true
				elems = append(elems, next)
			}
		}
	}
	return NewPermutationGroup(elems)
}

// Size returns the group order.
func (g *PermutationGroup) Size() int { return len(g.elems) }

// NSites returns the number of sites the elements act on.
func (g *PermutationGroup) NSites() int { return g.nsites }

// At returns element i.
func (g *PermutationGroup) At(i int) Permutation { return g.elems[i] }

// Elements returns the elements in group order. The slice must not be modified.
func (g *PermutationGroup) Elements() []Permutation { return g.elems }

// Inverse returns the index of the inverse of element i.
func (g *PermutationGroup) Inverse(i int) int { return g.inverse[i] }

// Multiply returns the index of At(i).Mul(At(j)).
func (g *PermutationGroup) Multiply(i, j int) int { return g.mult[i*len(g.elems)+j] }

// IdentityIndex returns the index of the identity element.
func (g *PermutationGroup) IdentityIndex() int { return g.identity }

// Equal reports whether g and h hold the same permutations in the same
// order.
func (g *PermutationGroup) Equal(h *PermutationGroup) bool {
	if g == h {
		return true
	}
	if g == nil || h == nil || g.nsites != h.nsites || len(g.elems) != len(h.elems) {
		return false
	}
	for i, p := range g.elems {
		if !p.Equal(h.elems[i]) {
			return false
		}
	}
	return true
}

// Index returns the index of p in the group.
func (g *PermutationGroup) Index(p Permutation) (int, error) {
	i, ok := g.index[p.key()]
	if !ok {
		return -1, symmetriesErrorf("Index", fmt.Errorf("%v: %w", p, ErrUnknownElement))
	}
	return i, nil
}

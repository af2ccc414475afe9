// SPDX-License-Identifier: MIT

package symmetries

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
)

// characterTol is the tolerance for unitarity and homomorphism checks.
const characterTol = 1e-10

// Representation is a one-dimensional unitary representation of a
// PermutationGroup: one complex character per element, indexed like the
// group.
type Representation struct {
	group *PermutationGroup
	chars []complex128
}

// NewRepresentation validates characters against group.
//
// Errors:
//   - ErrSizeMismatch when len(characters) != group.Size().
//   - ErrNotUnitary when some |chi| != 1.
//   - ErrNotRepresentation when chi(gh) != chi(g)chi(h) for some pair.
func NewRepresentation(group *PermutationGroup, characters []complex128) (*Representation, error) {
	if group == nil || len(characters) != group.Size() {
		return nil, symmetriesErrorf("NewRepresentation", ErrSizeMismatch)
	}
	for i, c := range characters {
		if math.Abs(cmplx.Abs(c)-1) > characterTol {
			return nil, symmetriesErrorf("NewRepresentation",
				fmt.Errorf("element %d chi=%v: %w", i, c, ErrNotUnitary))
		}
	}
	n := group.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cmplx.Abs(characters[group.Multiply(i, j)]-characters[i]*characters[j]) > characterTol {
				return nil, symmetriesErrorf("NewRepresentation",
					fmt.Errorf("elements %d,%d: %w", i, j, ErrNotRepresentation))
			}
		}
	}
	return &Representation{group: group, chars: slices.Clone(characters)}, nil
}

// TrivialRepresentation assigns character 1 to every element.
func TrivialRepresentation(group *PermutationGroup) *Representation {
	chars := make([]complex128, group.Size())
	for i := range chars {
		chars[i] = 1
	}
	return &Representation{group: group, chars: chars}
}

// GeneratedIrrep builds the representation in which generator a carries
// phase phases[a]. Characters are propagated along a breadth-first
// expansion of words in the generators; reaching an element twice with
// different characters is an error.
//
// Errors:
//   - ErrSizeMismatch when generators and phases differ in length.
//   - ErrUnknownElement when a generator is not in group.
//   - ErrNotUnitary, ErrInconsistentIrrep.
func GeneratedIrrep(group *PermutationGroup, generators []Permutation, phases []complex128) (*Representation, error) {
	if group == nil || len(generators) != len(phases) {
		return nil, symmetriesErrorf("GeneratedIrrep", ErrSizeMismatch)
	}
	gens := make([]int, len(generators))
	for a, gen := range generators {
		idx, err := group.Index(gen)
		if err != nil {
			return nil, symmetriesErrorf("GeneratedIrrep", err)
		}
		if math.Abs(cmplx.Abs(phases[a])-1) > characterTol {
			return nil, symmetriesErrorf("GeneratedIrrep",
				fmt.Errorf("generator %d phase=%v: %w", a, phases[a], ErrNotUnitary))
		}
		gens[a] = idx
	}

	n := group.Size()
	chars := make([]complex128, n)
	assigned := make([]bool, n)
	id := group.IdentityIndex()
	chars[id], assigned[id] = 1, true
	queue := []int{id}
	for head := 0; head < len(queue); head++ {
		e := queue[head]
		for a, gi := range gens {
			next := group.Multiply(gi, e)
			c := phases[a] * chars[e]
			if !assigned[next] {
				chars[next], assigned[next] = c, true
				queue = append(queue, next)
				continue
			}
			if cmplx.Abs(chars[next]-c) > characterTol {
				return nil, symmetriesErrorf("GeneratedIrrep",
					fmt.Errorf("element %d: %w", next, ErrInconsistentIrrep))
			}
		}
	}
	for i, ok := range assigned {
		if !ok {
			return nil, symmetriesErrorf("GeneratedIrrep",
				fmt.Errorf("element %d not generated: %w", i, ErrInconsistentIrrep))
		}
	}
	return NewRepresentation(group, chars)
}

// Group returns the group the representation is defined on.
func (r *Representation) Group() *PermutationGroup { return r.group }

// Size returns the number of characters.
func (r *Representation) Size() int { return len(r.chars) }

// Character returns chi(element i).
func (r *Representation) Character(i int) complex128 { return r.chars[i] }

// Characters returns a copy of all characters.
func (r *Representation) Characters() []complex128 { return slices.Clone(r.chars) }

// Equal reports whether r and s are defined on equal groups and their
// characters agree within tol.
func (r *Representation) Equal(s *Representation, tol float64) bool {
	if r == s {
		return true
	}
	if r == nil || s == nil || !r.group.Equal(s.group) {
		return false
	}
	for i, c := range r.chars {
		if cmplx.Abs(c-s.chars[i]) > tol {
			return false
		}
	}
	return true
}

// IsReal reports whether every character has |Im chi| <= tol.
func (r *Representation) IsReal(tol float64) bool {
	for _, c := range r.chars {
		if math.Abs(imag(c)) > tol {
			return false
		}
	}
	return true
}

// SPDX-License-Identifier: MIT

package symmetries

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBijective is returned when a permutation array is not a bijection
	// on {0, ..., n-1}.
	ErrNotBijective = errors.New("symmetries: permutation is not a bijection")

	// ErrEmptyGroup is returned for a group without elements.
	ErrEmptyGroup = errors.New("symmetries: group has no elements")

	// ErrSizeMismatch is returned when permutations act on different numbers
	// of sites, or a representation does not match its group.
	ErrSizeMismatch = errors.New("symmetries: size mismatch")

	// ErrNoIdentity is returned when a group lacks the identity permutation.
	ErrNoIdentity = errors.New("symmetries: group does not contain the identity")

	// ErrNotClosed is returned when a product of two elements is not in the group.
	ErrNotClosed = errors.New("symmetries: group is not closed under multiplication")

	// ErrDuplicateElement is returned when a permutation appears twice.
	ErrDuplicateElement = errors.New("symmetries: duplicate group element")

	// ErrNotUnitary is returned when a character does not have modulus one.
	ErrNotUnitary = errors.New("symmetries: character is not of modulus one")

	// ErrNotRepresentation is returned when characters violate chi(gh) = chi(g)chi(h).
	ErrNotRepresentation = errors.New("symmetries: characters are not a representation")

	// ErrInconsistentIrrep is returned when generator phases assign two
	// different characters to the same group element.
	ErrInconsistentIrrep = errors.New("symmetries: generator phases are inconsistent")

	// ErrUnknownElement is returned when a permutation is not part of a group.
	ErrUnknownElement = errors.New("symmetries: permutation not in group")
)

// symmetriesErrorf wraps err with an operation tag.
func symmetriesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

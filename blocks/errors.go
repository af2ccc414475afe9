// SPDX-License-Identifier: MIT

package blocks

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantumNumbers is returned for particle numbers outside
	// the range allowed by the number of sites.
	ErrInvalidQuantumNumbers = errors.New("blocks: invalid quantum numbers")

	// ErrTooManySites is returned when a configuration would not fit into
	// a 64-bit word.
	ErrTooManySites = errors.New("blocks: too many sites")

	// ErrEmptyBlock is returned when a symmetric block has no state with a
	// nonzero norm.
	ErrEmptyBlock = errors.New("blocks: block is empty")

	// ErrGroupMismatch is returned when the symmetry group does not act on
	// the block's sites or the irrep belongs to another group.
	ErrGroupMismatch = errors.New("blocks: symmetry group does not match block")

	// ErrInvalidPrefixBits is returned for a prefix width outside [0, n].
	ErrInvalidPrefixBits = errors.New("blocks: invalid number of prefix bits")

	// ErrDistributedSymmetries is returned when symmetries are requested
	// for a distributed block.
	ErrDistributedSymmetries = errors.New("blocks: distributed blocks do not support symmetries")
)

// blocksErrorf attaches a tag to err, preserving it for errors.Is.
func blocksErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

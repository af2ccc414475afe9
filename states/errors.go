// SPDX-License-Identifier: MIT

package states

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockMismatch is returned when two states live on different blocks
	// or a checkpoint was written for another block.
	ErrBlockMismatch = errors.New("states: block mismatch")

	// ErrZeroNorm is returned when normalizing a zero vector.
	ErrZeroNorm = errors.New("states: zero norm")

	// ErrCorruptCheckpoint is returned when a checkpoint cannot be decoded.
	ErrCorruptCheckpoint = errors.New("states: corrupt checkpoint")
)

func statesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

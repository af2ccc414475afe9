// SPDX-License-Identifier: MIT

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrComplexRequired is returned when real amplitudes are requested for
	// an operator or block that needs complex arithmetic.
	ErrComplexRequired = errors.New("algebra: complex amplitudes required")

	// ErrBlockMismatch is returned when the output block is not the sector
	// the operator maps the input block to.
	ErrBlockMismatch = errors.New("algebra: output block does not match operator sector")

	// ErrDistributedMatrix is returned by Matrix for distributed blocks.
	ErrDistributedMatrix = errors.New("algebra: dense matrix of a distributed block")

	// ErrForeignState is returned by a distributed Apply when a produced
	// configuration is not a state of the output block on its owner.
	ErrForeignState = errors.New("algebra: configuration outside the output block")
)

// DimensionMismatchError reports a vector whose length differs from the
// size of the block it is bound to.
type DimensionMismatchError struct {
	What     string
	Expected int64
	Actual   int64
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("algebra: %s has length %d, block size is %d", e.What, e.Actual, e.Expected)
}

func checkLen[T Number](what string, v []T, size int64) error {
	if int64(len(v)) != size {
		return &DimensionMismatchError{What: what, Expected: size, Actual: int64(len(v))}
	}
	return nil
}

// algebraErrorf attaches a tag to err, preserving it for errors.Is.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

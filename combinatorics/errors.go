// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSites is returned when the number of sites is negative or
	// exceeds the width of the pattern type.
	ErrInvalidSites = errors.New("combinatorics: invalid number of sites")

	// ErrInvalidParticles is returned when k < 0 or k > n.
	ErrInvalidParticles = errors.New("combinatorics: invalid number of set bits")
)

// combinatoricsErrorf tags err with the constructor that detected it.
func combinatoricsErrorf(tag string, n, k int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, n, k, err)
}

// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"fmt"
)

// ErrNotConverged is returned with WithStrictConvergence when Lanczos or
// the Krylov exponential hits the iteration limit.
var ErrNotConverged = errors.New("algorithms: iteration limit reached before convergence")

func algorithmsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

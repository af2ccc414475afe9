// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrTooFewSites indicates a non-positive lattice dimension.
	ErrTooFewSites = errors.New("lattice: dimensions must be at least 1")

	// ErrOpenBoundary indicates translations were requested on an open
	// lattice.
	ErrOpenBoundary = errors.New("lattice: translations require periodic boundaries")

	// ErrMomentum indicates a momentum index list that does not match the
	// translation generators.
	ErrMomentum = errors.New("lattice: one momentum index per translation generator")
)

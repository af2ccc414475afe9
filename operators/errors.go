// SPDX-License-Identifier: MIT

package operators

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned for a type tag outside the block's vocabulary.
	ErrUnknownType = errors.New("operators: unknown operator type for block")

	// ErrUndefinedCoupling is returned for a named coupling without a value.
	ErrUndefinedCoupling = errors.New("operators: coupling not defined")

	// ErrNonRealCoupling is returned when a Hermitian term has a complex coupling.
	ErrNonRealCoupling = errors.New("operators: coupling must be real")

	// ErrCouplingKind is returned when a term needs a matrix coupling and
	// got a scalar, or the other way around.
	ErrCouplingKind = errors.New("operators: wrong coupling kind")

	// ErrSiteOutOfRange is returned for a site index outside [0, n).
	ErrSiteOutOfRange = errors.New("operators: site out of range")

	// ErrDuplicateSites is returned when a multi-site term repeats a site.
	ErrDuplicateSites = errors.New("operators: duplicate sites")

	// ErrArity is returned for a wrong number of sites.
	ErrArity = errors.New("operators: wrong number of sites")

	// ErrMatrixShape is returned when a matrix coupling does not match the
	// local dimension of its sites.
	ErrMatrixShape = errors.New("operators: wrong matrix shape")

	// ErrNotConserving is returned when the terms change the block's
	// particle numbers by different amounts.
	ErrNotConserving = errors.New("operators: terms do not share a sector shift")

	// ErrNotSymmetric is returned when the operator sum does not commute
	// with the block's symmetry group.
	ErrNotSymmetric = errors.New("operators: operator not invariant under symmetry group")
)

// TermError names the offending term of an OpSum.
type TermError struct {
	Index int
	Op    Op
	Err   error
}

func (e *TermError) Error() string {
	return fmt.Sprintf("operators: term %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *TermError) Unwrap() error { return e.Err }

// operatorsErrorf attaches a tag to err, preserving it for errors.Is.
func operatorsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

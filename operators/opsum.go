// SPDX-License-Identifier: MIT

package operators

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/awietek/xdiag-sub007/matrix"
)

type couplingKind uint8

const (
	kindScalar couplingKind = iota
	kindNamed
	kindMatrix
)

// Coupling is the coefficient of a term: a named placeholder, a scalar or
// a matrix. The zero value is the scalar 0.
type Coupling struct {
	kind   couplingKind
	name   string
	scalar complex128
	mat    *matrix.Dense[complex128]
}

// Named returns a coupling resolved from the OpSum's table at compile time.
func Named(name string) Coupling { return Coupling{kind: kindNamed, name: name} }

// Scalar returns an explicit complex coupling.
func Scalar(x complex128) Coupling { return Coupling{kind: kindScalar, scalar: x} }

// Real returns an explicit real coupling.
func Real(x float64) Coupling { return Scalar(complex(x, 0)) }

// Matrix returns an explicit matrix coupling.
func Matrix(m *matrix.Dense[complex128]) Coupling { return Coupling{kind: kindMatrix, mat: m} }

// IsNamed reports whether c must be resolved from a coupling table.
func (c Coupling) IsNamed() bool { return c.kind == kindNamed }

// IsMatrix reports whether c holds a matrix.
func (c Coupling) IsMatrix() bool { return c.kind == kindMatrix }

// Name returns the coupling name ("" for explicit couplings).
func (c Coupling) Name() string { return c.name }

// Value returns the scalar value of an explicit scalar coupling.
func (c Coupling) Value() complex128 { return c.scalar }

// Mat returns the matrix of a matrix coupling.
func (c Coupling) Mat() *matrix.Dense[complex128] { return c.mat }

func (c Coupling) String() string {
	switch c.kind {
	case kindNamed:
		return c.name
	case kindMatrix:
		return fmt.Sprintf("matrix(%dx%d)", c.mat.Rows(), c.mat.Cols())
	}
	if imag(c.scalar) == 0 {
		return fmt.Sprintf("%g", real(c.scalar))
	}
	return fmt.Sprintf("%g", c.scalar)
}

// Op is a single term: type tag, coupling and sites.
type Op struct {
	Type     string
	Coupling Coupling
	Sites    []int
}

// NewOp returns a term of the given type.
func NewOp(typ string, c Coupling, sites ...int) Op {
	return Op{Type: typ, Coupling: c, Sites: sites}
}

func (o Op) String() string {
	parts := make([]string, len(o.Sites))
	for i, s := range o.Sites {
		parts[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("%s[%s](%s)", o.Type, o.Coupling, strings.Join(parts, ","))
}

// OpSum is an ordered list of terms plus a table of named couplings.
// Evaluation does not depend on term order.
type OpSum struct {
	ops       []Op
	couplings map[string]Coupling
}

// NewOpSum returns an OpSum holding ops.
func NewOpSum(ops ...Op) *OpSum {
	return &OpSum{ops: slices.Clone(ops), couplings: map[string]Coupling{}}
}

// Add appends a term and returns s for chaining.
func (s *OpSum) Add(op Op) *OpSum {
	s.ops = append(s.ops, op)
	return s
}

// Set defines the scalar value of a named coupling.
func (s *OpSum) Set(name string, value complex128) *OpSum {
	s.couplings[name] = Scalar(value)
	return s
}

// SetMatrix defines a named matrix coupling.
func (s *OpSum) SetMatrix(name string, m *matrix.Dense[complex128]) *OpSum {
	s.couplings[name] = Matrix(m)
	return s
}

// Defined reports whether name has a value.
func (s *OpSum) Defined(name string) bool {
	_, ok := s.couplings[name]
	return ok
}

// Coupling returns the value bound to name.
func (s *OpSum) Coupling(name string) (Coupling, bool) {
	c, ok := s.couplings[name]
	return c, ok
}

// Ops returns a copy of the terms.
func (s *OpSum) Ops() []Op { return slices.Clone(s.ops) }

// Len returns the number of terms.
func (s *OpSum) Len() int { return len(s.ops) }

// Plus returns a new OpSum with the terms of s followed by those of other.
// Couplings of other take precedence on name clashes.
func (s *OpSum) Plus(other *OpSum) *OpSum {
	out := &OpSum{
		ops:       append(slices.Clone(s.ops), other.ops...),
		couplings: maps.Clone(s.couplings),
	}
	maps.Copy(out.couplings, other.couplings)
	return out
}

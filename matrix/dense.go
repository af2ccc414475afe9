// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j, generic over real and complex entries.
//   - Guarantee safety at the public surface: At/Set/Add return errors
//     instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) and a memory
//     budget from a single source of truth (options.go).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Add: O(1); Clone: O(r*c);
//     MatVec: O(r*c); ConjTranspose: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
	"unsafe"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAdd    = "Add"
	ctxMatVec = "MatVec"
)

// Scalar is the set of entry types: real or complex double precision.
type Scalar interface {
	float64 | complex128
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and Add.
type Dense[T Scalar] struct {
	r, c           int
	data           []T
	validateNaNInf bool
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: check r*c*sizeof(T) against the memory budget.
//   - Stage 3: allocate the zero-filled buffer and copy the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrInsufficientMemory (allocation larger than the memory budget).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	var zero T
	bytes := uint64(rows) * uint64(cols) * uint64(unsafe.Sizeof(zero))
	if err := checkMemory(bytes, o.memoryFraction); err != nil {
		return nil, matrixErrorf("NewDense", err)
	}
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Data exposes the row-major backing slice. Mutations are visible in m.
func (m *Dense[T]) Data() []T { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: reject NaN/Inf when the numeric policy asks for it.
//   - Stage 3: write into data.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v
	return nil
}

// Add accumulates v into (row, col).
// Complexity: O(1).
func (m *Dense[T]) Add(row, col int, v T) error {
	idx, err := m.indexOf(ctxAdd, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[idx] += v
	return nil
}

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: append([]T(nil), m.data...), validateNaNInf: m.validateNaNInf}
}

// ConjTranspose returns the conjugate transpose (the transpose for real T).
// Complexity: O(r*c).
func (m *Dense[T]) ConjTranspose() *Dense[T] {
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data)), validateNaNInf: m.validateNaNInf}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = conj(m.data[i*m.c+j])
		}
	}
	return out
}

// MatVec returns m*x.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != Cols().
//
// Complexity: O(r*c).
func (m *Dense[T]) MatVec(x []T) ([]T, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(ctxMatVec, err)
	}
	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var acc T
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}
	return y, nil
}

// String implements fmt.Stringer.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// ---------- scalar helpers ----------

func conj[T Scalar](v T) T {
	if z, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(z)).(T)
	}
	return v
}

func abs[T Scalar](v T) float64 {
	switch z := any(v).(type) {
	case complex128:
		return cmplx.Abs(z)
	case float64:
		return math.Abs(z)
	}
	return 0
}

func isFinite[T Scalar](v T) bool {
	switch z := any(v).(type) {
	case complex128:
		return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
	case float64:
		return !math.IsNaN(z) && !math.IsInf(z, 0)
	}
	return true
}

// SPDX-License-Identifier: MIT

package lanczos

import (
	"math"

	"github.com/awietek/xdiag-sub007/algebra"
)

// Operator is a Hermitian linear map on vectors of one block. Dot must
// return the global inner product <a|b> so that all ranks of a
// distributed block take the same decisions.
type Operator[T algebra.Number] interface {
	MatVec(in, out []T) error
	Dot(a, b []T) (complex128, error)
}

func norm[T algebra.Number](op Operator[T], v []T) (float64, error) {
	d, err := op.Dot(v, v)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(max(real(d), 0)), nil
}

// axpy computes y += a*x.
func axpy[T algebra.Number](a T, x, y []T) {
	for i := range y {
		y[i] += a * x[i]
	}
}

func scale[T algebra.Number](a T, x []T) {
	for i := range x {
		x[i] *= a
	}
}

func real64[T algebra.Number](x float64) T { return algebra.FromComplex[T](complex(x, 0)) }

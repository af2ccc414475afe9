// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/matrix"
	"github.com/awietek/xdiag-sub007/operators"
)

// Matrix materializes ops as a dense Size(out) x Size(in) matrix with
// entries <out_j|H|in_i>. It follows the semantics of Apply.
//
// Errors: as Apply, plus ErrDistributedMatrix for distributed blocks and
// matrix.ErrInsufficientMemory when the matrix would not fit.
func Matrix[T Number](ops *operators.OpSum, in, out blocks.Block, opts ...Option) (*matrix.Dense[T], error) {
	if _, ok := in.(blocks.Distributed); ok {
		return nil, algebraErrorf("Matrix", ErrDistributedMatrix)
	}
	o := gatherOptions(opts)
	c, err := operators.Compile(ops, in, o.precision)
	if err != nil {
		return nil, err
	}
	if err := checkBlocks(c, in, out); err != nil {
		return nil, err
	}
	if err := checkReal[T](c, in, out); err != nil {
		return nil, err
	}
	m, err := matrix.NewDense[T](int(out.Size()), int(in.Size()), o.dense...)
	if err != nil {
		return nil, algebraErrorf("Matrix", err)
	}

	inB, outB := in.Basis(), out.Basis()
	data, cols := m.Data(), int64(in.Size())
	add := func(j, i int64, v complex128) {
		data[j*cols+i] += FromComplex[T](v)
	}
	for i := int64(0); i < inB.Size(); i++ {
		s := inB.State(i)
		norm := complex(inB.Norm(i), 0)
		if d := diagonal(c, s); d != 0 {
			if j, f, ok := outB.Lookup(s); ok {
				add(j, i, complex(d, 0)*f/norm)
			}
		}
		visit(c, s, func(t uint64, coef complex128) {
			if j, f, ok := outB.Lookup(t); ok {
				add(j, i, coef*f/norm)
			}
		})
	}
	return m, nil
}

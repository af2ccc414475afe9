// SPDX-License-Identifier: MIT

package algebra

import (
	"math"

	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/operators"
)

// Operator is an operator sum compiled once for a block it maps onto
// itself. It provides the matrix-vector product and the inner product
// used by Krylov methods; both are collective for distributed blocks.
type Operator[T Number] struct {
	compiled *operators.Compiled
	block    blocks.Block
	opts     options
}

// NewOperator compiles ops for block.
//
// Errors: compilation errors, ErrBlockMismatch if ops does not conserve the
// block's particle numbers, ErrComplexRequired as in Apply.
func NewOperator[T Number](ops *operators.OpSum, block blocks.Block, opts ...Option) (*Operator[T], error) {
	o := gatherOptions(opts)
	c, err := operators.Compile(ops, block, o.precision)
	if err == nil {
		err = checkBlocks(c, block, block)
	}
	if err == nil {
		err = checkReal[T](c, block)
	}
	if err != nil {
		if d, ok := block.(blocks.Distributed); ok {
			d.Comm().Abort(err)
		}
		return nil, err
	}
	o.log.Debug().
		Str("block", block.String()).
		Int("diagonal_terms", len(c.Diagonals)).
		Int("offdiagonal_terms", len(c.Monomials)+len(c.Matrices)).
		Msg("operator compiled")
	return &Operator[T]{compiled: c, block: block, opts: o}, nil
}

// Block returns the block the operator acts on.
func (op *Operator[T]) Block() blocks.Block { return op.block }

// Size returns the local vector length.
func (op *Operator[T]) Size() int64 { return op.block.Size() }

// Dim returns the global dimension.
func (op *Operator[T]) Dim() int64 { return op.block.Dim() }

// MatVec overwrites out with H*in.
func (op *Operator[T]) MatVec(in, out []T) error {
	clear(out)
	err := applyCompiled(op.compiled, op.block, in, op.block, out, op.opts)
	if err != nil {
		if d, ok := op.block.(blocks.Distributed); ok {
			d.Comm().Abort(err)
		}
	}
	return err
}

// Dot returns <a|b> summed over all ranks.
func (op *Operator[T]) Dot(a, b []T) (complex128, error) {
	return Dot(op.block, a, b)
}

// Dot returns <a|b> = sum conj(a_i) b_i for vectors on block, summed over
// all ranks of a distributed block in rank order.
func Dot[T Number](block blocks.Block, a, b []T) (complex128, error) {
	d, distributed := block.(blocks.Distributed)
	err := checkLen("left vector", a, block.Size())
	if err == nil {
		err = checkLen("right vector", b, block.Size())
	}
	if err != nil {
		if distributed {
			d.Comm().Abort(err)
		}
		return 0, err
	}
	var sum complex128
	for i := range a {
		sum += ToComplex(Conj(a[i]) * b[i])
	}
	if distributed {
		return d.Comm().AllReduceComplex(sum)
	}
	return sum, nil
}

// Norm returns the 2-norm of v over all ranks.
func Norm[T Number](block blocks.Block, v []T) (float64, error) {
	d, err := Dot(block, v, v)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(real(d)), nil
}

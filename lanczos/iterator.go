// SPDX-License-Identifier: MIT

package lanczos

import "github.com/awietek/xdiag-sub007/algebra"

// iterator generates the Krylov basis v_0, v_1, ... of an operator. Only
// the two most recent vectors and the reorthogonalization window are
// kept.
type iterator[T algebra.Number] struct {
	op     Operator[T]
	prev   []T // v_{k-1}
	cur    []T // v_k
	w      []T
	beta   float64 // coupling between prev and cur
	window [][]T
	keep   int
}

// newIterator normalizes a copy of start into v_0.
func newIterator[T algebra.Number](op Operator[T], start []T, window int) (*iterator[T], error) {
	n, err := norm(op, start)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrZeroVector
	}
	it := &iterator[T]{
		op:   op,
		prev: make([]T, len(start)),
		cur:  make([]T, len(start)),
		w:    make([]T, len(start)),
		keep: window,
	}
	copy(it.cur, start)
	scale(real64[T](1/n), it.cur)
	it.remember(it.cur)
	return it, nil
}

// step computes the residual w = H v_k - alpha v_k - beta v_{k-1} and
// returns alpha. A non-nil fixed replaces the computed alpha, which makes
// a second pass reproduce the first.
func (it *iterator[T]) step(fixed *float64) (float64, error) {
	if err := it.op.MatVec(it.cur, it.w); err != nil {
		return 0, err
	}
	var alpha float64
	if fixed != nil {
		alpha = *fixed
	} else {
		d, err := it.op.Dot(it.cur, it.w)
		if err != nil {
			return 0, err
		}
		alpha = real(d)
	}
	axpy(real64[T](-alpha), it.cur, it.w)
	if it.beta != 0 {
		axpy(real64[T](-it.beta), it.prev, it.w)
	}
	for _, v := range it.window {
		c, err := it.op.Dot(v, it.w)
		if err != nil {
			return 0, err
		}
		axpy(-algebra.FromComplex[T](c), v, it.w)
	}
	return alpha, nil
}

// advance makes w/beta the next Krylov vector.
func (it *iterator[T]) advance(beta float64) {
	scale(real64[T](1/beta), it.w)
	it.prev, it.cur, it.w = it.cur, it.w, it.prev
	it.beta = beta
	it.remember(it.cur)
}

func (it *iterator[T]) remember(v []T) {
	if it.keep == 0 {
		return
	}
	if len(it.window) == it.keep {
		oldest := it.window[0]
		it.window = append(it.window[1:], oldest)
	} else {
		it.window = append(it.window, make([]T, len(v)))
	}
	copy(it.window[len(it.window)-1], v)
}

// SPDX-License-Identifier: MIT

package algebra

import (
	"golang.org/x/sync/errgroup"

	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/comm"
	"github.com/awietek/xdiag-sub007/operators"
)

// visit calls emit for every basis transition produced by the off-diagonal
// terms of c acting on configuration s. coef already includes the
// fermionic sign but not the symmetry factors.
func visit(c *operators.Compiled, s uint64, emit func(t uint64, coef complex128)) {
	for _, m := range c.Monomials {
		t, sign, ok := m.Apply(s, c.Fermionic)
		if !ok {
			continue
		}
		emit(t, m.Coef*complex(sign, 0))
	}
	for _, lm := range c.Matrices {
		in := lm.Local(s)
		for out := 0; out < lm.Dim; out++ {
			if v := lm.Data[out*lm.Dim+in]; v != 0 {
				emit(lm.Replace(s, out), v)
			}
		}
	}
}

// diagonal returns the sum of the diagonal terms of c on s.
func diagonal(c *operators.Compiled, s uint64) float64 {
	var d float64
	for _, t := range c.Diagonals {
		d += t.Coef * t.Eval(s)
	}
	return d
}

type chunk struct{ begin, end int64 }

func chunks(size int64, workers int) []chunk {
	if size == 0 {
		return nil
	}
	n := int64(workers)
	if n > size {
		n = size
	}
	step := (size + n - 1) / n
	out := make([]chunk, 0, n)
	for b := int64(0); b < size; b += step {
		out = append(out, chunk{b, min(b+step, size)})
	}
	return out
}

// applyLocal accumulates c*vin into vout for non-distributed blocks.
func applyLocal[T Number](c *operators.Compiled, in, out blocks.Block, vin, vout []T, workers int) error {
	inB, outB := in.Basis(), out.Basis()
	same := in == out
	parts := chunks(inB.Size(), workers)
	bufs := make([][]T, len(parts))

	var g errgroup.Group
	for w, part := range parts {
		g.Go(func() error {
			var buf []T
			add := func(j int64, v T) {
				if buf == nil {
					buf = make([]T, outB.Size())
				}
				buf[j] += v
			}
			for i := part.begin; i < part.end; i++ {
				x := vin[i]
				s := inB.State(i)
				norm := inB.Norm(i)
				if d := diagonal(c, s); d != 0 {
					if same {
						vout[i] += FromComplex[T](complex(d, 0)) * x
					} else if j, f, ok := outB.Lookup(s); ok {
						add(j, FromComplex[T](complex(d, 0)*f/complex(norm, 0))*x)
					}
				}
				visit(c, s, func(t uint64, coef complex128) {
					j, f, ok := outB.Lookup(t)
					if !ok {
						return
					}
					add(j, FromComplex[T](coef*f/complex(norm, 0))*x)
				})
			}
			bufs[w] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, buf := range bufs {
		for j, v := range buf {
			vout[j] += v
		}
	}
	return nil
}

// applyDistributed accumulates c*vin into vout for distributed blocks.
// Every rank must call it; it performs exactly one Exchange.
func applyDistributed[T Number](c *operators.Compiled, in, out blocks.Block, vin, vout []T, workers int) error {
	dist := out.(blocks.Distributed)
	cm := dist.Comm()
	rank, size := cm.Rank(), cm.Size()
	inB, outB := in.Basis(), out.Basis()
	same := in == out
	parts := chunks(inB.Size(), workers)
	bufs := make([][]T, len(parts))
	sends := make([][][]comm.Amplitude, len(parts))

	var g errgroup.Group
	for w, part := range parts {
		g.Go(func() error {
			buf := make([]T, outB.Size())
			send := make([][]comm.Amplitude, size)
			ok := true
			for i := part.begin; i < part.end && ok; i++ {
				x := vin[i]
				s := inB.State(i)
				if d := diagonal(c, s); d != 0 && same {
					vout[i] += FromComplex[T](complex(d, 0)) * x
				} else if d != 0 {
					ok = visitTarget(dist, outB, rank, s, complex(d, 0)*ToComplex(x), buf, send)
				}
				visit(c, s, func(t uint64, coef complex128) {
					ok = visitTarget(dist, outB, rank, t, coef*ToComplex(x), buf, send) && ok
				})
			}
			if !ok {
				return algebraErrorf("applyDistributed", ErrForeignState)
			}
			bufs[w], sends[w] = buf, send
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		cm.Abort(err)
		return err
	}
	for _, buf := range bufs {
		for j, v := range buf {
			vout[j] += v
		}
	}

	merged := make([][]comm.Amplitude, size)
	for _, send := range sends {
		for dst, amps := range send {
			merged[dst] = append(merged[dst], amps...)
		}
	}
	recv, err := cm.Exchange(merged)
	if err != nil {
		return err
	}
	for _, amps := range recv {
		for _, a := range amps {
			j, _, ok := outB.Lookup(a.State)
			if !ok {
				err := algebraErrorf("applyDistributed", ErrForeignState)
				cm.Abort(err)
				return err
			}
			vout[j] += FromComplex[T](a.Value)
		}
	}
	return nil
}

// visitTarget routes amplitude v of configuration t either into the local
// buffer or into the send buffer of its owner. It reports false for a
// locally owned configuration outside the block; remote ones are checked
// by the owner after the Exchange. Either way the world is aborted with
// ErrForeignState.
func visitTarget[T Number](dist blocks.Distributed, outB blocks.Basis, rank int, t uint64, v complex128, buf []T, send [][]comm.Amplitude) bool {
	owner := dist.Owner(t)
	if owner != rank {
		send[owner] = append(send[owner], comm.Amplitude{State: t, Value: v})
		return true
	}
	j, _, ok := outB.Lookup(t)
	if ok {
		buf[j] += FromComplex[T](v)
	}
	return ok
}

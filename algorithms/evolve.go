// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/awietek/xdiag-sub007/algebra"
	"github.com/awietek/xdiag-sub007/evolution"
	"github.com/awietek/xdiag-sub007/lanczos"
	"github.com/awietek/xdiag-sub007/operators"
	"github.com/awietek/xdiag-sub007/states"
)

// shifted is H - shift.
type shifted[T algebra.Number] struct {
	*algebra.Operator[T]
	shift float64
}

func (s shifted[T]) MatVec(in, out []T) error {
	if err := s.Operator.MatVec(in, out); err != nil {
		return err
	}
	e := algebra.FromComplex[T](complex(s.shift, 0))
	for i := range out {
		out[i] -= e * in[i]
	}
	return nil
}

// TimeEvolve returns exp(-i H t)|state>. The result is always complex.
func TimeEvolve(ops *operators.OpSum, state *states.State, t float64, opts ...Option) (*states.State, error) {
	o := gatherOptions(opts)
	out, err := evolve[complex128](ops, state, complex(0, -t), 0, o)
	if err != nil {
		return nil, algorithmsErrorf("TimeEvolve", err)
	}
	return out, nil
}

// ImagTimeEvolve returns exp(-tau H)|state>, or exp(-tau (H - E0))|state>
// with WithShift. The result is not normalized.
func ImagTimeEvolve(ops *operators.OpSum, state *states.State, tau float64, opts ...Option) (*states.State, error) {
	o := gatherOptions(opts)
	isReal, err := useReal(ops, state.Block(), o)
	if err != nil {
		return nil, algorithmsErrorf("ImagTimeEvolve", err)
	}
	isReal = isReal && state.IsReal()

	var e0 float64
	if o.shift {
		if e0, err = Eigval0(ops, state.Block(), opts...); err != nil {
			return nil, algorithmsErrorf("ImagTimeEvolve", err)
		}
	}
	var out *states.State
	if isReal {
		out, err = evolve[float64](ops, state, complex(-tau, 0), e0, o)
	} else {
		out, err = evolve[complex128](ops, state, complex(-tau, 0), e0, o)
	}
	if err != nil {
		return nil, algorithmsErrorf("ImagTimeEvolve", err)
	}
	return out, nil
}

func evolve[T algebra.Number](ops *operators.OpSum, state *states.State, tau complex128, shift float64, o options) (*states.State, error) {
	block := state.Block()
	op, err := algebra.NewOperator[T](ops, block, o.algebraOptions()...)
	if err != nil {
		return nil, err
	}
	var v []T
	if algebra.IsComplex[T]() {
		v = any(state.Vector128()).([]T)
	} else {
		v = any(state.Vector64()).([]T)
	}

	var (
		x    []T
		info evolution.Info
	)
	if shift != 0 {
		x, info, err = evolution.ExpSymV[T](shifted[T]{op, shift}, v, tau, o.evolutionOptions()...)
	} else {
		x, info, err = evolution.ExpSymV[T](op, v, tau, o.evolutionOptions()...)
	}
	if err != nil {
		return nil, err
	}
	if info.Criterion == lanczos.MaxIterationsReached {
		if o.strict {
			return nil, ErrNotConverged
		}
		o.log.Warn().
			Int("iterations", info.Iterations).
			Float64("error_estimate", info.ErrorEstimate).
			Msg("time evolution did not reach the requested precision")
	}
	return states.FromVector(block, x)
}

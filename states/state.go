// SPDX-License-Identifier: MIT

package states

import (
	"slices"

	"github.com/awietek/xdiag-sub007/algebra"
	"github.com/awietek/xdiag-sub007/blocks"
	"github.com/awietek/xdiag-sub007/internal/rng"
)

// State is a vector on a block. Exactly one of the real and complex
// storages is in use.
type State struct {
	block blocks.Block
	re    []float64
	cplx  []complex128
}

// New returns the zero state on block.
func New(block blocks.Block, real bool) *State {
	if real {
		return &State{block: block, re: make([]float64, block.Size())}
	}
	return &State{block: block, cplx: make([]complex128, block.Size())}
}

// FromVector copies v into a new state on block.
func FromVector[T algebra.Number](block blocks.Block, v []T) (*State, error) {
	if int64(len(v)) != block.Size() {
		return nil, statesErrorf("FromVector", &algebra.DimensionMismatchError{
			What: "vector", Expected: block.Size(), Actual: int64(len(v)),
		})
	}
	switch x := any(v).(type) {
	case []float64:
		return &State{block: block, re: slices.Clone(x)}, nil
	case []complex128:
		return &State{block: block, cplx: slices.Clone(x)}, nil
	}
	return nil, nil
}

// Random returns a normalized random state. Each amplitude is a function of
// seed and the basis configuration only. Collective for distributed blocks.
func Random(block blocks.Block, seed int64, real bool) (*State, error) {
	s := New(block, real)
	basis := block.Basis()
	for i := int64(0); i < basis.Size(); i++ {
		key := basis.State(i)
		if real {
			s.re[i] = rng.Uniform(seed, key)
			continue
		}
		re, im := rng.Uniform2(seed, key)
		s.cplx[i] = complex(re, im)
	}
	if err := s.Normalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Block returns the block the state lives on.
func (s *State) Block() blocks.Block { return s.block }

// IsReal reports whether the amplitudes are stored as float64.
func (s *State) IsReal() bool { return s.cplx == nil }

// Size returns the local number of amplitudes.
func (s *State) Size() int64 { return s.block.Size() }

// Vector64 returns the real amplitudes, or nil for a complex state. The
// slice aliases the state.
func (s *State) Vector64() []float64 { return s.re }

// Vector128 returns the complex amplitudes. For a complex state the slice
// aliases the state; for a real state it is a converted copy.
func (s *State) Vector128() []complex128 {
	if s.cplx != nil {
		return s.cplx
	}
	out := make([]complex128, len(s.re))
	for i, x := range s.re {
		out[i] = complex(x, 0)
	}
	return out
}

// ToComplex returns a complex copy of s.
func (s *State) ToComplex() *State {
	return &State{block: s.block, cplx: slices.Clone(s.Vector128())}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{block: s.block, re: slices.Clone(s.re), cplx: slices.Clone(s.cplx)}
}

// Norm returns the 2-norm over all ranks.
func (s *State) Norm() (float64, error) {
	if s.IsReal() {
		return algebra.Norm(s.block, s.re)
	}
	return algebra.Norm(s.block, s.cplx)
}

// Normalize scales s to unit norm.
func (s *State) Normalize() error {
	n, err := s.Norm()
	if err != nil {
		return err
	}
	if n == 0 {
		return statesErrorf("Normalize", ErrZeroNorm)
	}
	for i := range s.re {
		s.re[i] /= n
	}
	for i := range s.cplx {
		s.cplx[i] /= complex(n, 0)
	}
	return nil
}

// Dot returns <s|t>. Mixed real and complex states are compared in complex
// arithmetic.
func Dot(s, t *State) (complex128, error) {
	if s.block != t.block && blocks.Fingerprint(s.block) != blocks.Fingerprint(t.block) {
		return 0, statesErrorf("Dot", ErrBlockMismatch)
	}
	if s.IsReal() && t.IsReal() {
		return algebra.Dot(s.block, s.re, t.re)
	}
	return algebra.Dot(s.block, s.Vector128(), t.Vector128())
}

// SPDX-License-Identifier: MIT

package symmetries

import (
	"math"
	"math/cmplx"
)

// NormTol is the threshold below which a representative norm counts as zero.
const NormTol = 1e-12

// Action maps a configuration through group element g. It returns the image
// and the fermionic sign of the relabeling (always +1 for spins).
type Action func(g int, state uint64) (uint64, float64)

// SpinAction returns the action of group on spin configurations.
func SpinAction(group *PermutationGroup) Action {
	elems := group.Elements()
	return func(g int, state uint64) (uint64, float64) {
		return elems[g].Apply(state), 1
	}
}

// FermionAction returns the action of group on two-species fermionic
// configurations packed as up | dn<<nsites. Up and down strings are
// relabeled independently; the total sign is the product of both.
func FermionAction(group *PermutationGroup) Action {
	elems := group.Elements()
	n := group.NSites()
	mask := uint64(1)<<n - 1
	return func(g int, state uint64) (uint64, float64) {
		p := elems[g]
		up, dn := state&mask, state>>n
		return p.Apply(up) | p.Apply(dn)<<n, FermiSign(p, up) * FermiSign(p, dn)
	}
}

// Representative returns the numerically smallest configuration in the
// orbit of state and the index of an element mapping state onto it.
//
// Complexity: O(|G|) applications of act.
func Representative(order int, act Action, state uint64) (rep uint64, sym int) {
	rep = state
	for g := 0; g < order; g++ {
		if t, _ := act(g, state); t < rep {
			rep, sym = t, g
		}
	}
	if rep == state {
		// Report an element that fixes state (the identity does).
		for g := 0; g < order; g++ {
			if t, _ := act(g, state); t == state {
				return rep, g
			}
		}
	}
	return rep, sym
}

// Stabilizer returns the indices of the elements fixing state.
func Stabilizer(order int, act Action, state uint64) []int {
	var stab []int
	for g := 0; g < order; g++ {
		if t, _ := act(g, state); t == state {
			stab = append(stab, g)
		}
	}
	return stab
}

// Norm returns the norm of the projected state P|rep> for the given irrep.
//
// The sum of conj(chi(g)) * sign over the stabilizer equals |Stab| when the
// irrep restricted to the stabilizer is trivial and 0 otherwise; zero is
// reported as exactly 0 so callers can drop the orbit.
func Norm(irrep *Representation, act Action, rep uint64) float64 {
	order := irrep.Size()
	var sum complex128
	for g := 0; g < order; g++ {
		if t, sign := act(g, rep); t == rep {
			sum += cmplx.Conj(irrep.Character(g)) * complex(sign, 0)
		}
	}
	if cmplx.Abs(sum) < NormTol {
		return 0
	}
	return math.Sqrt(real(sum) / float64(order))
}

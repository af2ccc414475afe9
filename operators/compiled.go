// SPDX-License-Identifier: MIT

package operators

import (
	"math"
	"math/bits"
)

// Elementary is a single creation (Create) or annihilation operator at a
// bit position of the configuration word. For spins, creation raises
// (0 -> 1) and annihilation lowers (1 -> 0).
type Elementary struct {
	Bit    int
	Create bool
}

// Monomial is Coef * Ops[len-1] ... Ops[1] Ops[0]: Ops[0] acts first.
type Monomial struct {
	Coef complex128
	Ops  []Elementary
}

// Apply maps state through the monomial. ok is false when an elementary
// operator annihilates the state. For fermionic monomials sign carries the
// Jordan-Wigner string of every step.
func (m Monomial) Apply(state uint64, fermionic bool) (out uint64, sign float64, ok bool) {
	sign = 1
	for _, e := range m.Ops {
		bit := uint64(1) << e.Bit
		occupied := state&bit != 0
		if occupied == e.Create {
			return 0, 0, false
		}
		if fermionic && bits.OnesCount64(state&(bit-1))&1 == 1 {
			sign = -sign
		}
		state ^= bit
	}
	return state, sign, true
}

// Diagonal is Coef * Eval(state).
type Diagonal struct {
	Coef float64
	Eval func(state uint64) float64
}

// LocalMatrix is an explicit operator on one or two spin sites. The local
// index of a configuration is sum_k bit(Sites[k]) << k and
// Data[out*Dim+in] is the matrix element <out|M|in>.
type LocalMatrix struct {
	Sites []int
	Dim   int
	Data  []complex128
}

// Local returns the local index of state.
func (l LocalMatrix) Local(state uint64) int {
	idx := 0
	for k, s := range l.Sites {
		idx |= int(state>>s&1) << k
	}
	return idx
}

// Replace writes local configuration loc into state.
func (l LocalMatrix) Replace(state uint64, loc int) uint64 {
	for k, s := range l.Sites {
		state &^= uint64(1) << s
		state |= uint64(loc>>k&1) << s
	}
	return state
}

// Compiled is an operator sum validated and lowered for one block.
type Compiled struct {
	NSites    int
	Fermionic bool
	Diagonals []Diagonal
	Monomials []Monomial
	Matrices  []LocalMatrix

	// DNup and DNdn are the changes of the particle numbers caused by every
	// off-diagonal term. They are zero for blocks without fixed particle
	// numbers.
	DNup, DNdn int
}

// IsReal reports whether every coefficient is real within tol.
func (c *Compiled) IsReal(tol float64) bool {
	for _, m := range c.Monomials {
		if math.Abs(imag(m.Coef)) > tol {
			return false
		}
	}
	for _, m := range c.Matrices {
		for _, v := range m.Data {
			if math.Abs(imag(v)) > tol {
				return false
			}
		}
	}
	return true
}

// IsDiagonal reports whether the operator has no off-diagonal part.
func (c *Compiled) IsDiagonal() bool {
	return len(c.Monomials) == 0 && len(c.Matrices) == 0
}

// SectorShift returns (DNup, DNdn).
func (c *Compiled) SectorShift() (int, int) { return c.DNup, c.DNdn }

// Empty reports whether every term was compiled away.
func (c *Compiled) Empty() bool {
	return len(c.Diagonals) == 0 && c.IsDiagonal()
}

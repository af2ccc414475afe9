// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"
	"math"

	"github.com/awietek/xdiag-sub007/internal/rng"
	"github.com/awietek/xdiag-sub007/symmetries"
)

// Block is a Hilbert-space block. The set of implementations is closed:
// *Spinhalf, *Electron, *TJ and *SpinhalfDistributed.
type Block interface {
	// NSites returns the number of lattice sites.
	NSites() int
	// Nup returns the number of up spins/electrons, or Unset.
	Nup() int
	// Ndn returns the number of down electrons, or Unset.
	Ndn() int
	// Size returns the number of basis states stored by this process.
	Size() int64
	// Dim returns the dimension summed over all processes.
	Dim() int64
	// Irrep returns the symmetry irrep, or nil for a plain block.
	Irrep() *symmetries.Representation
	// IsReal reports whether the basis can carry real amplitudes.
	IsReal(tol float64) bool
	// Basis returns the view used by the operator engine.
	Basis() Basis
	// Shift returns the block with particle numbers changed by (dnup, dndn)
	// and every other property kept.
	Shift(dnup, dndn int) (Block, error)
	String() string

	isBlock()
}

func irrepIsReal(irrep *symmetries.Representation, tol float64) bool {
	return irrep == nil || irrep.IsReal(tol)
}

// shiftCount returns k+d, or ErrInvalidQuantumNumbers if the result leaves
// [0, n]. Unset never arises from a shift.
func shiftCount(tag string, k, d, n int) (int, error) {
	if m := k + d; m >= 0 && m <= n {
		return m, nil
	}
	return 0, blocksErrorf(tag, fmt.Errorf("%d%+d on %d sites: %w", k, d, n, ErrInvalidQuantumNumbers))
}

func checkSymmetries(tag string, n int, o options) error {
	if o.group == nil {
		return nil
	}
	if o.group.NSites() != n || o.irrep.Group() != o.group {
		return blocksErrorf(tag, ErrGroupMismatch)
	}
	return nil
}

// Fingerprint hashes the defining properties of b: kind, sites, particle
// numbers, dimension and the irrep with its group. Two blocks with equal
// fingerprints have identical bases with overwhelming probability.
func Fingerprint(b Block) uint64 {
	var kind uint64
	switch b.(type) {
	case *Spinhalf:
		kind = 1
	case *Electron:
		kind = 2
	case *TJ:
		kind = 3
	case *SpinhalfDistributed:
		kind = 4
	}
	h := rng.Mix64(kind, uint64(b.NSites()))
	h = rng.Mix64(h, uint64(int64(b.Nup())))
	h = rng.Mix64(h, uint64(int64(b.Ndn())))
	h = rng.Mix64(h, uint64(b.Dim()))
	if irrep := b.Irrep(); irrep != nil {
		group := irrep.Group()
		for g := 0; g < irrep.Size(); g++ {
			p := group.At(g)
			for i := 0; i < p.Size(); i++ {
				h = rng.Mix64(h, uint64(p.At(i)))
			}
			chi := irrep.Character(g)
			h = rng.Mix64(h, math.Float64bits(real(chi)))
			h = rng.Mix64(h, math.Float64bits(imag(chi)))
		}
	}
	return h
}

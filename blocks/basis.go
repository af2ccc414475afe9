// SPDX-License-Identifier: MIT

package blocks

import (
	"math/bits"

	"github.com/awietek/xdiag-sub007/combinatorics"
)

// Basis is the view of a block used by the apply engine.
//
// State(i) is the configuration stored at local index i (a representative
// for symmetric blocks). Norm(i) is 1 for plain blocks.
//
// Lookup maps an arbitrary configuration s produced by an operator to the
// local index of the basis state it projects onto, together with the
// factor by which the amplitude of s contributes to it: for symmetric
// blocks conj(chi(h)) * sign_h(s) * Norm(idx), where h maps s onto its
// representative. ok is false when s is outside the block, its orbit has
// zero norm, or (for distributed blocks) another rank owns it.
type Basis interface {
	Size() int64
	State(i int64) uint64
	Norm(i int64) float64
	Lookup(s uint64) (idx int64, factor complex128, ok bool)
}

// plain is an unsymmetrized sector with an index function.
type plain interface {
	size() int64
	state(i int64) uint64
	index(s uint64) (int64, bool)
}

// plainBasis adapts a plain sector to Basis.
type plainBasis struct{ p plain }

func (b plainBasis) Size() int64          { return b.p.size() }
func (b plainBasis) State(i int64) uint64 { return b.p.state(i) }
func (b plainBasis) Norm(int64) float64   { return 1 }

func (b plainBasis) Lookup(s uint64) (int64, complex128, bool) {
	i, ok := b.p.index(s)
	return i, 1, ok
}

// spinSector is the set of n-bit patterns, optionally with fixed popcount.
type spinSector struct {
	n, k   int
	table  *combinatorics.LinTable // nil when k is Unset
	states []uint64
}

func newSpinSector(n, k int) (*spinSector, error) {
	if k == Unset {
		return &spinSector{n: n, k: Unset}, nil
	}
	table, err := combinatorics.NewLinTable(n, k)
	if err != nil {
		return nil, err
	}
	combs, err := combinatorics.NewCombinations[uint64](n, k)
	if err != nil {
		return nil, err
	}
	states := make([]uint64, 0, combs.Size())
	for _, s := range combs.All() {
		states = append(states, s)
	}
	return &spinSector{n: n, k: k, table: table, states: states}, nil
}

func (s *spinSector) size() int64 {
	if s.table == nil {
		return int64(1) << s.n
	}
	return int64(len(s.states))
}

func (s *spinSector) state(i int64) uint64 {
	if s.table == nil {
		return uint64(i)
	}
	return s.states[i]
}

func (s *spinSector) index(v uint64) (int64, bool) {
	if s.n < 64 && v>>s.n != 0 {
		return 0, false
	}
	if s.table == nil {
		return int64(v), true
	}
	if bits.OnesCount64(v) != s.k {
		return 0, false
	}
	return s.table.Index(v), true
}

// electronSector is the product of an up and a down spin sector on the
// same n sites; configurations are packed up | dn<<n.
type electronSector struct {
	n      int
	mask   uint64
	up, dn *spinSector
}

func (e *electronSector) size() int64 { return e.up.size() * e.dn.size() }

func (e *electronSector) state(i int64) uint64 {
	sdn := e.dn.size()
	return e.up.state(i/sdn) | e.dn.state(i%sdn)<<e.n
}

func (e *electronSector) index(v uint64) (int64, bool) {
	iu, ok := e.up.index(v & e.mask)
	if !ok {
		return 0, false
	}
	id, ok := e.dn.index(v >> e.n)
	if !ok {
		return 0, false
	}
	return iu*e.dn.size() + id, true
}

// tjSector excludes doubly occupied sites. The down pattern is ranked after
// compressing it onto the holes of the up pattern.
type tjSector struct {
	n      int
	mask   uint64
	up     *spinSector
	dnHole *spinSector // n-nup bits, ndn set
}

func (t *tjSector) size() int64 { return t.up.size() * t.dnHole.size() }

func (t *tjSector) state(i int64) uint64 {
	sdn := t.dnHole.size()
	up := t.up.state(i / sdn)
	dn := combinatorics.Pdep(t.dnHole.state(i%sdn), ^up&t.mask)
	return up | dn<<t.n
}

func (t *tjSector) index(v uint64) (int64, bool) {
	up, dn := v&t.mask, v>>t.n
	if up&dn != 0 || dn&^t.mask != 0 {
		return 0, false
	}
	iu, ok := t.up.index(up)
	if !ok {
		return 0, false
	}
	id, ok := t.dnHole.index(combinatorics.Pext(dn, ^up&t.mask))
	if !ok {
		return 0, false
	}
	return iu*t.dnHole.size() + id, true
}

// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/awietek/xdiag-sub007/operators"
	"github.com/awietek/xdiag-sub007/symmetries"
)

// Neighbor selects a bond family.
type Neighbor int

const (
	// Nearest bonds connect orthogonal neighbors (x±1 or y±1).
	Nearest Neighbor = iota
	// Diagonal bonds connect diagonal neighbors, the next-nearest
	// neighbors of the square lattice.
	Diagonal
)

// Forward half of each neighborhood: every bond is emitted once, from the
// site it starts at.
var offsets = map[Neighbor][][2]int{
	Nearest:  {{1, 0}, {0, 1}},
	Diagonal: {{1, 1}, {-1, 1}},
}

// Bond is an unordered pair of sites.
type Bond struct{ I, J int }

// Lattice is an immutable Width×Height rectangle of sites.
type Lattice struct {
	Width, Height int
	Periodic      bool
}

// Option configures a lattice.
type Option func(*Lattice)

// WithOpenBoundary disables periodic wrapping.
func WithOpenBoundary() Option {
	return func(l *Lattice) { l.Periodic = false }
}

// Chain returns an n-site chain; periodic unless WithOpenBoundary is given.
func Chain(n int, opts ...Option) (*Lattice, error) {
	return Square(n, 1, opts...)
}

// Square returns a width×height lattice; periodic unless WithOpenBoundary
// is given.
//
// Errors: ErrTooFewSites.
func Square(width, height int, opts ...Option) (*Lattice, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Square: width=%d, height=%d: %w", width, height, ErrTooFewSites)
	}
	l := &Lattice{Width: width, Height: height, Periodic: true}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// NSites returns Width*Height.
func (l *Lattice) NSites() int { return l.Width * l.Height }

// Index maps (x, y) to the row-major site index.
func (l *Lattice) Index(x, y int) int { return y*l.Width + x }

// Coordinate converts a site index back to (x, y).
func (l *Lattice) Coordinate(idx int) (x, y int) { return idx % l.Width, idx / l.Width }

// neighbor returns the site at (x+dx, y+dy), wrapping on periodic lattices.
// Offsets along an axis of extent 1 have no neighbor.
func (l *Lattice) neighbor(x, y, dx, dy int) (int, bool) {
	if (dx != 0 && l.Width == 1) || (dy != 0 && l.Height == 1) {
		return 0, false
	}
	nx, ny := x+dx, y+dy
	if l.Periodic {
		nx, ny = mod(nx, l.Width), mod(ny, l.Height)
	}
	if nx < 0 || nx >= l.Width || ny < 0 || ny >= l.Height {
		return 0, false
	}
	return l.Index(nx, ny), true
}

func mod(a, n int) int { return ((a % n) + n) % n }

// Bonds returns the bonds of family kind in row-major order of their first
// site. On narrow periodic lattices bonds that wrap onto an existing bond
// or onto the site itself are dropped.
//
// Complexity: O(Width*Height).
func (l *Lattice) Bonds(kind Neighbor) []Bond {
	seen := make(map[Bond]bool)
	var bonds []Bond
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			i := l.Index(x, y)
			for _, d := range offsets[kind] {
				j, ok := l.neighbor(x, y, d[0], d[1])
				if !ok || j == i {
					continue
				}
				key := Bond{min(i, j), max(i, j)}
				if seen[key] {
					continue
				}
				seen[key] = true
				bonds = append(bonds, Bond{i, j})
			}
		}
	}
	return bonds
}

// OpSum returns the operator sum of a two-site term typ with coupling c on
// every bond of family kind.
func (l *Lattice) OpSum(typ string, c operators.Coupling, kind Neighbor) *operators.OpSum {
	ops := operators.NewOpSum()
	for _, b := range l.Bonds(kind) {
		ops.Add(operators.NewOp(typ, c, b.I, b.J))
	}
	return ops
}

// translation returns the permutation shifting every site by (dx, dy).
func (l *Lattice) translation(dx, dy int) symmetries.Permutation {
	perm := make([]int, l.NSites())
	for i := range perm {
		x, y := l.Coordinate(i)
		perm[i] = l.Index(mod(x+dx, l.Width), mod(y+dy, l.Height))
	}
	return symmetries.MustPermutation(perm)
}

// Translations returns the translation group with its generators: the unit
// shift along x, then along y, each omitted when its extent is 1.
//
// Errors: ErrOpenBoundary.
func (l *Lattice) Translations() (*symmetries.PermutationGroup, []symmetries.Permutation, error) {
	if !l.Periodic {
		return nil, nil, fmt.Errorf("Translations: %w", ErrOpenBoundary)
	}
	var gens []symmetries.Permutation
	if l.Width > 1 {
		gens = append(gens, l.translation(1, 0))
	}
	if l.Height > 1 {
		gens = append(gens, l.translation(0, 1))
	}
	if len(gens) == 0 {
		gens = append(gens, symmetries.Identity(1))
	}
	group, err := symmetries.GeneratedGroup(gens...)
	if err != nil {
		return nil, nil, err
	}
	return group, gens, nil
}

// Momentum returns the irrep in which the generator along each axis has
// character exp(2πi k/L). k lists one index per generator.
//
// Errors: ErrMomentum, symmetries construction errors.
func (l *Lattice) Momentum(group *symmetries.PermutationGroup, gens []symmetries.Permutation, k ...int) (*symmetries.Representation, error) {
	if len(k) != len(gens) {
		return nil, fmt.Errorf("Momentum: %d indices for %d generators: %w", len(k), len(gens), ErrMomentum)
	}
	extents := make([]int, 0, 2)
	if l.Width > 1 {
		extents = append(extents, l.Width)
	}
	if l.Height > 1 {
		extents = append(extents, l.Height)
	}
	if len(extents) == 0 {
		extents = append(extents, 1)
	}
	phases := make([]complex128, len(k))
	for i, ki := range k {
		phases[i] = cmplx.Exp(complex(0, 2*math.Pi*float64(ki)/float64(extents[i])))
	}
	return symmetries.GeneratedIrrep(group, gens, phases)
}

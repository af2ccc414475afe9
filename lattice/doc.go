// SPDX-License-Identifier: MIT

// Package lattice builds the geometry Hamiltonians are written on: chains
// and rectangular lattices with open or periodic boundaries, their bonds,
// and their translation groups with momentum irreps.
//
// Sites are numbered row-major: site (x, y) has index y*Width + x.
//
// Quick example, a 4×4 periodic square lattice J1-J2 model:
//
//	l, _ := lattice.Square(4, 4)
//	ops := l.OpSum("SdotS", operators.Named("J1"), lattice.Nearest)
//	ops = ops.Plus(l.OpSum("SdotS", operators.Named("J2"), lattice.Diagonal))
//	group, gens, _ := l.Translations()
//	irrep, _ := l.Momentum(group, gens, 2, 2)
package lattice

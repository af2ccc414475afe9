// SPDX-License-Identifier: MIT

// Package symmetries provides site permutations, permutation groups,
// one-dimensional representations (irreps) and the orbit reduction used by
// symmetric bases.
//
// Conventions:
//   - Permutation.Apply(state): bit i of the result is bit perm[i] of state,
//     so the content of site j moves to site perm^-1[j].
//   - p.Mul(q) applies q first and then p.
//   - A group element acts on fermionic configurations by relabeling the
//     creation operators; the resulting reordering sign is FermiSign.
//   - A basis state of a symmetric block is the projection
//     P|r> = 1/|G| sum_g conj(chi(g)) T_g |r> of its representative r, the
//     numerically smallest configuration of its orbit. Its norm is
//     sqrt(sum_{g in Stab(r)} conj(chi(g)) sign_g(r) / |G|) and vanishes when
//     the irrep is incompatible with the orbit.
//
// Everything here is immutable after construction and safe for concurrent
// reads.
package symmetries

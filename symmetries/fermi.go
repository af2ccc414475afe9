// SPDX-License-Identifier: MIT

package symmetries

// FermiSign returns the sign picked up by a fermionic configuration when p
// relabels its creation operators.
//
// The configuration is c+_{j1} ... c+_{jk}|0> with j1 < ... < jk. Site j moves
// to p^-1[j]; restoring ascending order costs one transposition per inversion
// of the sequence p^-1[j1], ..., p^-1[jk].
//
// Complexity: O(k^2) for k occupied sites.
func FermiSign(p Permutation, state uint64) float64 {
	var targets [64]int
	k := 0
	for j := 0; j < len(p.inv) && state>>j != 0; j++ {
		if (state>>j)&1 == 1 {
			targets[k] = p.inv[j]
			k++
		}
	}
	inversions := 0
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			if targets[a] > targets[b] {
				inversions++
			}
		}
	}
	if inversions&1 == 1 {
		return -1
	}
	return 1
}

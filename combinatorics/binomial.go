// SPDX-License-Identifier: MIT

package combinatorics

// MaxSites is the largest pattern width supported by the ranking tables.
const MaxSites = 64

// binomialTable[n][k] = C(n,k) for 0 <= k <= n <= MaxSites.
// C(64,32) ~ 1.8e18 still fits into int64.
var binomialTable = buildBinomialTable()

func buildBinomialTable() [MaxSites + 1][MaxSites + 1]int64 {
	var t [MaxSites + 1][MaxSites + 1]int64
	for n := 0; n <= MaxSites; n++ {
		t[n][0] = 1
		for k := 1; k <= n; k++ {
			t[n][k] = t[n-1][k-1] + t[n-1][k]
		}
	}
	return t
}

// Binomial returns C(n,k), or 0 when k < 0, k > n or n is out of range.
func Binomial(n, k int) int64 {
	if n < 0 || k < 0 || k > n || n > MaxSites {
		return 0
	}
	return binomialTable[n][k]
}

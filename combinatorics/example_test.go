// SPDX-License-Identifier: MIT

package combinatorics_test

import (
	"fmt"

	"github.com/awietek/xdiag-sub007/combinatorics"
)

func ExampleCombinations() {
	c, _ := combinatorics.NewCombinations[uint16](4, 2)
	for i, s := range c.All() {
		fmt.Printf("%d:%04b ", i, s)
	}
	fmt.Println()
	// Output:
	// 0:0011 1:0101 2:0110 3:1001 4:1010 5:1100
}

func ExampleLinTable() {
	lt, _ := combinatorics.NewLinTable(4, 2)
	fmt.Println(lt.Index(0b1010), combinatorics.NthPattern[uint16](4, 4, 2) == 0b1010)
	// Output:
	// 4 true
}

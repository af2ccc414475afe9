// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// totalMemory is swapped in tests.
var totalMemory = func() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

// checkMemory rejects an allocation of bytes when it exceeds fraction of
// the physical memory. A failing probe is not fatal: the guard is skipped.
//
// Complexity: O(1) plus one system query.
func checkMemory(bytes uint64, fraction float64) error {
	if fraction <= 0 {
		return nil
	}
	total, err := totalMemory()
	if err != nil || total == 0 {
		return nil
	}
	if limit := uint64(float64(total) * fraction); bytes > limit {
		return fmt.Errorf("%d bytes requested, limit %d: %w", bytes, limit, ErrInsufficientMemory)
	}
	return nil
}

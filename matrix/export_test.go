// SPDX-License-Identifier: MIT

package matrix

// SetTotalMemory replaces the physical memory probe and returns a restore
// function.
func SetTotalMemory(f func() (uint64, error)) (restore func()) {
	prev := totalMemory
	totalMemory = f
	return func() { totalMemory = prev }
}

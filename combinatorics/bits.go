// SPDX-License-Identifier: MIT

package combinatorics

import "math/bits"

// Word is the set of unsigned integer kinds used to store bit patterns.
// The width is chosen per problem size; bases in this module store uint64.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in B.
func Width[B Word]() int {
	return bits.Len64(uint64(^B(0)))
}

// Popcount returns the number of set bits of v.
func Popcount[B Word](v B) int {
	return bits.OnesCount64(uint64(v))
}

// Gbit returns bit i of v as 0 or 1.
func Gbit[B Word](v B, i int) B {
	return (v >> i) & 1
}

// Gbits returns the n bits of v starting at position start.
func Gbits[B Word](v B, start, n int) B {
	if n >= Width[B]() {
		return v >> start
	}
	return (v >> start) & ((B(1) << n) - 1)
}

// Mask returns a pattern with the lowest n bits set.
func Mask[B Word](n int) B {
	if n >= Width[B]() {
		return ^B(0)
	}
	return (B(1) << n) - 1
}

// Parity returns 1 if v has an odd number of set bits, else 0.
func Parity[B Word](v B) int {
	return bits.OnesCount64(uint64(v)) & 1
}

// Pext gathers the bits of x selected by mask into the low bits of the
// result (software version of the BMI2 instruction).
func Pext[B Word](x, mask B) B {
	var res B
	var bb B = 1
	for m := mask; m != 0; m &= m - 1 {
		if x&(m&-m) != 0 {
			res |= bb
		}
		bb <<= 1
	}
	return res
}

// Pdep scatters the low bits of x to the positions selected by mask.
func Pdep[B Word](x, mask B) B {
	var res B
	var bb B = 1
	for m := mask; m != 0; m &= m - 1 {
		if x&bb != 0 {
			res |= m & -m
		}
		bb <<= 1
	}
	return res
}

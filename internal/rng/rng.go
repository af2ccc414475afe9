// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic pseudo-random values.
//
// Goals:
//   - Determinism: same seed => identical values across platforms and across
//     process counts. Values are derived from (seed, configuration) pairs
//     instead of a sequential stream, so a vector filled in any order or on
//     any number of ranks is the same vector.
//   - Encapsulation: no time-based sources hidden anywhere.
package rng

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// Mix64 is a SplitMix64-style avalanche of parent and stream.
// Small changes in either input produce large, well-distributed changes in
// the output.
func Mix64(parent uint64, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Uniform maps (seed, key) to a float64 in [-1, 1).
func Uniform(seed int64, key uint64) float64 {
	if seed == 0 {
		seed = DefaultSeed
	}
	x := Mix64(uint64(seed), key)
	// 53 high bits -> [0,1), then shift to [-1,1).
	return float64(x>>11)/float64(uint64(1)<<53)*2 - 1
}

// Uniform2 returns two independent values in [-1, 1) for the same key,
// used for the real and imaginary parts of complex amplitudes.
func Uniform2(seed int64, key uint64) (float64, float64) {
	return Uniform(seed, key), Uniform(seed, Mix64(key, 0x5851f42d4c957f2d))
}

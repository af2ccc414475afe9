// SPDX-License-Identifier: MIT

package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniform_DeterministicAndBounded(t *testing.T) {
	for key := uint64(0); key < 1000; key++ {
		a := Uniform(7, key)
		require.Equal(t, a, Uniform(7, key))
		require.GreaterOrEqual(t, a, -1.0)
		require.Less(t, a, 1.0)
	}
	require.Equal(t, Uniform(0, 3), Uniform(DefaultSeed, 3))
	require.NotEqual(t, Uniform(1, 3), Uniform(2, 3))
}

func TestMix64_Avalanche(t *testing.T) {
	require.NotEqual(t, Mix64(1, 0), Mix64(1, 1))
	require.NotEqual(t, Mix64(1, 0), Mix64(2, 0))
}

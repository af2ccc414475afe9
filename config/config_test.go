// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awietek/xdiag-sub007/config"
)

var keys = []string{
	"XDIAG_PRECISION", "XDIAG_MAX_ITERATIONS", "XDIAG_NUM_WORKERS", "XDIAG_SEED",
	"XDIAG_LOG_LEVEL", "XDIAG_LOG_PRETTY", "XDIAG_REORTHOGONALIZE", "XDIAG_DENSE_MEMORY_FRACTION",
}

// clearEnv unsets every XDIAG_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 1e-12, cfg.Precision)
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, 0, cfg.Reorthogonalize)
	assert.Equal(t, 0.5, cfg.DenseMemoryFraction)
}

func TestLoad_EnvironmentAndDotEnv(t *testing.T) {
	clearEnv(t)
	env := filepath.Join(t.TempDir(), "run.env")
	require.NoError(t, os.WriteFile(env, []byte("XDIAG_SEED=7\nXDIAG_LOG_PRETTY=true\nXDIAG_PRECISION=1e-8\n"), 0o600))
	t.Setenv("XDIAG_PRECISION", "1e-10") // environment wins over the file
	t.Setenv("XDIAG_REORTHOGONALIZE", "20")
	t.Setenv("XDIAG_MAX_ITERATIONS", "not-a-number")

	cfg, err := config.Load(env)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 1e-10, cfg.Precision)
	assert.Equal(t, 20, cfg.Reorthogonalize)
	assert.Equal(t, 1000, cfg.MaxIterations)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDIAG_DENSE_MEMORY_FRACTION", "1.5")
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

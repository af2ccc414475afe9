// SPDX-License-Identifier: MIT

// Package config reads run parameters from the environment, optionally
// seeded from a .env file. Library packages never read the environment
// themselves; algorithms.OptionsFromConfig turns a Config into options.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the tunable parameters of the solvers.
type Config struct {
	Precision           float64 // XDIAG_PRECISION
	MaxIterations       int     // XDIAG_MAX_ITERATIONS
	Workers             int     // XDIAG_NUM_WORKERS
	Seed                int64   // XDIAG_SEED
	LogLevel            string  // XDIAG_LOG_LEVEL
	LogPretty           bool    // XDIAG_LOG_PRETTY
	Reorthogonalize     int     // XDIAG_REORTHOGONALIZE, window size, 0 = off
	DenseMemoryFraction float64 // XDIAG_DENSE_MEMORY_FRACTION
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Precision:           1e-12,
		MaxIterations:       1000,
		Workers:             runtime.GOMAXPROCS(0),
		Seed:                42,
		LogLevel:            "info",
		Reorthogonalize:     0,
		DenseMemoryFraction: 0.5,
	}
}

// Load reads the given .env files (default ".env") when present, then the
// XDIAG_* environment variables. Unparsable values fall back to defaults.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	d := Default()
	cfg := &Config{
		Precision:           getEnvAsFloat("XDIAG_PRECISION", d.Precision),
		MaxIterations:       getEnvAsInt("XDIAG_MAX_ITERATIONS", d.MaxIterations),
		Workers:             getEnvAsInt("XDIAG_NUM_WORKERS", d.Workers),
		Seed:                int64(getEnvAsInt("XDIAG_SEED", int(d.Seed))),
		LogLevel:            getEnv("XDIAG_LOG_LEVEL", d.LogLevel),
		LogPretty:           getEnvAsBool("XDIAG_LOG_PRETTY", d.LogPretty),
		Reorthogonalize:     getEnvAsInt("XDIAG_REORTHOGONALIZE", d.Reorthogonalize),
		DenseMemoryFraction: getEnvAsFloat("XDIAG_DENSE_MEMORY_FRACTION", d.DenseMemoryFraction),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Precision <= 0:
		return fmt.Errorf("%w: precision %g", ErrInvalid, c.Precision)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d", ErrInvalid, c.MaxIterations)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Reorthogonalize < 0:
		return fmt.Errorf("%w: reorthogonalization window %d", ErrInvalid, c.Reorthogonalize)
	case c.DenseMemoryFraction <= 0 || c.DenseMemoryFraction > 1:
		return fmt.Errorf("%w: dense memory fraction %g", ErrInvalid, c.DenseMemoryFraction)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

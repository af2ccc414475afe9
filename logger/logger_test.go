// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/awietek/xdiag-sub007/logger"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name  string
		level zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.level, logger.ParseLevel(tc.name))
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "warn", Output: &buf})
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"lib":"xdiag"`)
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "debug", Pretty: true, Output: &buf})
	log.Debug().Int("iteration", 3).Msg("lanczos step")
	assert.Contains(t, buf.String(), "lanczos step")
	assert.Contains(t, buf.String(), "iteration=")
	assert.NotContains(t, buf.String(), `"message"`)
}

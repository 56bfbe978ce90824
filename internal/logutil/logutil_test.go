//go:build unit

package logutil

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("builds loggers for all formats", func(t *testing.T) {
		for _, format := range []string{"", "console", "JSON"} {
			// Execute
			logger, err := New("debug", format)

			// Check
			assert.NoErrorf(t, err, "build logger for format %q", format)
			assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "debug enabled")
		}
	})

	t.Run("defaults to info", func(t *testing.T) {
		// Execute
		logger, err := New("", "")

		// Check
		assert.NoError(t, err, "build logger")
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "debug disabled")
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel), "info enabled")
	})

	t.Run("fails on unknown level", func(t *testing.T) {
		// Execute
		_, err := New("loud", "console")

		// Check
		assert.Error(t, err, "unknown level rejected")
	})

	t.Run("fails on unknown format", func(t *testing.T) {
		// Execute
		_, err := New("info", "xml")

		// Check
		assert.Error(t, err, "unknown format rejected")
	})
}

func TestOrNop(t *testing.T) {
	t.Run("replaces nil logger", func(t *testing.T) {
		// Execute
		logger := OrNop(nil)

		// Check
		assert.NotNil(t, logger, "logger returned")
		assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel), "no-op logger")
	})
}

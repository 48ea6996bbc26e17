package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("Should write structured output", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf})

		log.Info("server added", "name", "Test")
		out := buf.String()
		assert.Contains(t, out, "server added")
		assert.Contains(t, out, "name")
	})

	t.Run("Should respect the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: WarnLevel, Output: &buf})

		log.Info("hidden")
		log.Warn("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})

		log.Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should round-trip through the context", func(t *testing.T) {
		log := NewForTests()
		ctx := ContextWithLogger(context.Background(), log)
		require.Same(t, log, FromContext(ctx))
	})

	t.Run("Should fall back to a default logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
		assert.NotNil(t, FromContext(nil)) //nolint:staticcheck
	})
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, InfoLevel.ToCharmlogLevel(), LogLevel("bogus").ToCharmlogLevel())
}

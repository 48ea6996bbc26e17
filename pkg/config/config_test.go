package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("Should produce a valid configuration", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	})

	t.Run("Should keep the chat probe timeout shorter than the default", func(t *testing.T) {
		cfg := Default()
		assert.Less(t, cfg.Probe.ChatTimeout, cfg.Probe.DefaultTimeout)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Should reject an out-of-range port", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("Should reject a zero probe timeout", func(t *testing.T) {
		cfg := Default()
		cfg.Probe.ChatTimeout = 0 * time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("Should reject a blank model", func(t *testing.T) {
		cfg := Default()
		cfg.LLM.Model = ""
		assert.Error(t, cfg.Validate())
	})
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `validate:"required"`
	Probe  ProbeConfig  `validate:"required"`
	LLM    LLMConfig    `validate:"required"`
}

// ServerConfig contains the HTTP listener configuration.
type ServerConfig struct {
	Host string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
}

// ProbeConfig holds the two status-probe timeouts. DefaultTimeout is used
// for standalone status lookups; ChatTimeout bounds the probe issued in the
// middle of an interactive chat turn and is deliberately shorter so a dead
// game server cannot stall the LLM reply for long. Keep them separate.
type ProbeConfig struct {
	DefaultTimeout time.Duration `validate:"gt=0"`
	ChatTimeout    time.Duration `validate:"gt=0"`
}

// LLMConfig selects the chat model.
type LLMConfig struct {
	Model string `validate:"required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Probe: ProbeConfig{
			DefaultTimeout: 5 * time.Second,
			ChatTimeout:    2500 * time.Millisecond,
		},
		LLM: LLMConfig{
			Model: "gpt-4o-mini",
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// InitialAPIKey returns the OpenAI API key used to seed the in-memory key
// slot at startup. A .env file next to the binary is honored when present;
// the admin page can overwrite the key at any time and the in-memory slot
// stays authoritative.
func InitialAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("OPENAI_API_KEY")
}

package mcserver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const apiKeyHintLen = 6

var validate = validator.New()

// Registry stores the configured servers and the single OpenAI API key
// slot. Both live only in process memory and are lost on restart.
// Mutation is serialized by a mutex; positional addressing still shifts
// under concurrent deletes, which callers have to live with.
type Registry struct {
	mu      sync.Mutex
	servers []ServerConfig
	apiKey  string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// List returns a snapshot of the configured servers in display order.
func (r *Registry) List() []ServerConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ServerConfig, len(r.servers))
	copy(out, r.servers)
	return out
}

// Len returns the number of configured servers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.servers)
}

// Get returns the server at index.
func (r *Registry) Get(index int) (ServerConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.servers) {
		return ServerConfig{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return r.servers[index], nil
}

// Add validates cfg and appends it to the list. On validation failure the
// list is left untouched.
func (r *Registry) Add(cfg ServerConfig) error {
	cfg = normalize(cfg)
	if err := validate.Struct(&cfg); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.servers = append(r.servers, cfg)
	return nil
}

// Update validates cfg and replaces the record at index. The old record is
// only discarded when both the index and the candidate are valid.
func (r *Registry) Update(index int, cfg ServerConfig) error {
	cfg = normalize(cfg)
	if err := validate.Struct(&cfg); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.servers) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	r.servers[index] = cfg
	return nil
}

// Remove deletes the record at index and returns it. An out-of-range index
// leaves the list unchanged.
func (r *Registry) Remove(index int) (ServerConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.servers) {
		return ServerConfig{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	removed := r.servers[index]
	r.servers = append(r.servers[:index], r.servers[index+1:]...)
	return removed, nil
}

// SeedDefaultsIfEmpty populates the list from defaults when it is empty.
// The records are copied, so later edits never touch the template slice.
// Calling this on a non-empty registry is a no-op.
func (r *Registry) SeedDefaultsIfEmpty(defaults []ServerConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.servers) > 0 {
		return
	}
	r.servers = make([]ServerConfig, len(defaults))
	copy(r.servers, defaults)
}

// SetAPIKey overwrites the stored API key. Blank input is treated as
// "no change" and reported via the return value so callers can warn.
func (r *Registry) SetAPIKey(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apiKey = value
	return true
}

// APIKey returns the stored API key, or "" when none is configured.
func (r *Registry) APIKey() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apiKey
}

// APIKeyHint reports whether a key is configured along with a short
// non-sensitive prefix for display. The full key is never exposed.
func (r *Registry) APIKeyHint() (bool, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.apiKey == "" {
		return false, ""
	}
	hint := r.apiKey
	if len(hint) > apiKeyHintLen {
		hint = hint[:apiKeyHintLen] + "..."
	}
	return true, hint
}

func normalize(cfg ServerConfig) ServerConfig {
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Host = strings.TrimSpace(cfg.Host)
	if strings.TrimSpace(cfg.Type) == "" {
		cfg.Type = DefaultType
	}
	return cfg
}

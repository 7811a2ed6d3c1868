package config

import (
	"time"

	"github.com/leapstack-labs/esmgen/internal/engine"
	"github.com/leapstack-labs/esmgen/pkg/dialects"
)

// Default configuration values.
const (
	DefaultDialect       = dialects.Default
	DefaultOutput        = "auto"
	DefaultConcurrency   = engine.DefaultConcurrency
	DefaultWatchDebounce = engine.DefaultWatchDebounce
)

// Defaults returns the default values keyed by config key.
func Defaults() map[string]any {
	return map[string]any{
		"dialect":        DefaultDialect,
		"check":          false,
		"verbose":        false,
		"output":         DefaultOutput,
		"concurrency":    DefaultConcurrency,
		"watch_debounce": DefaultWatchDebounce.String(),
	}
}

// ApplyDefaults fills zero fields of c.
func ApplyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.Dialect == "" {
		c.Dialect = DefaultDialect
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutput
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.WatchDebounce == 0 {
		c.WatchDebounce = DefaultWatchDebounce
	}
}

// Config holds the esmgen settings shared by every entry point.
type Config struct {
	Dialect       string        `koanf:"dialect"`
	Check         bool          `koanf:"check"`
	Verbose       bool          `koanf:"verbose"`
	OutputFormat  string        `koanf:"output"`
	Concurrency   int           `koanf:"concurrency"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`
}

// EngineConfig converts c into an engine configuration, resolving the dialect.
func (c *Config) EngineConfig() (engine.Config, error) {
	d, err := ResolveDialect(c.Dialect)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Dialect:       d,
		Check:         c.Check,
		Concurrency:   c.Concurrency,
		WatchDebounce: c.WatchDebounce,
	}, nil
}

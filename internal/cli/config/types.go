// Package config provides configuration management for the esmgen CLI.
//
// The settings type and defaults live in internal/config and are
// re-exported here via type aliases for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/esmgen/internal/config"
)

// Config is an alias for the shared esmgen settings.
type Config = sharedcfg.Config

// Default configuration values.
const (
	DefaultDialect       = sharedcfg.DefaultDialect
	DefaultOutput        = sharedcfg.DefaultOutput
	DefaultConcurrency   = sharedcfg.DefaultConcurrency
	DefaultWatchDebounce = sharedcfg.DefaultWatchDebounce
)

// EnvPrefix is the prefix of environment variables read as config keys.
const EnvPrefix = "ESMGEN_"

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() *Config {
	c := &Config{}
	sharedcfg.ApplyDefaults(c)
	return c
}

package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/esmgen/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/esmgen/internal/config"
)

// Validate checks if the configuration is valid.
func Validate(c *Config) error {
	if _, err := sharedcfg.ResolveDialect(c.Dialect); err != nil {
		return err
	}
	if !output.IsValidMode(c.OutputFormat) {
		return fmt.Errorf("unknown output format %q\nAvailable formats: %s", c.OutputFormat, strings.Join(output.Modes(), ", "))
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch_debounce must be positive, got %s", c.WatchDebounce)
	}
	return nil
}

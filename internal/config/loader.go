// Package config provides shared configuration for esmgen.
// This package is decoupled from CLI concerns: it owns the settings type,
// their defaults and config file discovery.
package config

import (
	"os"
	"path/filepath"

	"github.com/leapstack-labs/esmgen/pkg/dialect"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "esmgen.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "esmgen.yml"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing esmgen.yaml or esmgen.yml.
// Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
	return ""
}

// ResolveDialect looks up a registered dialect by name.
func ResolveDialect(name string) (*dialect.Dialect, error) {
	return dialect.Resolve(name)
}

// Package output renders command results for terminals, markdown consumers
// and JSON pipelines.
package output

import "strings"

// OutputMode selects how command output is formatted.
type OutputMode string

// Supported output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Mode parses a mode name. Empty and unknown names yield ModeAuto.
func Mode(name string) OutputMode {
	m := OutputMode(strings.ToLower(strings.TrimSpace(name)))
	if !IsValidMode(string(m)) {
		return ModeAuto
	}
	return m
}

// Modes returns the names of all supported modes.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// IsValidMode reports whether name is a supported mode.
func IsValidMode(name string) bool {
	for _, m := range Modes() {
		if strings.EqualFold(name, m) {
			return true
		}
	}
	return false
}

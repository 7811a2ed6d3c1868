package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// UnknownDialectError is returned when an unregistered dialect is requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q\nAvailable dialects: %s\nHint: Check dialect in esmgen.yaml or the --dialect flag", e.Name, strings.Join(e.Available, ", "))
}

// DecodeError reports a statement that could not be decoded.
type DecodeError struct {
	Dialect string
	Index   int
	Type    string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: statement %d (%s): %v", e.Dialect, e.Index, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

package core

import "fmt"

// InvalidNodeError is returned when a module statement violates the
// structural invariants required for rendering.
type InvalidNodeError struct {
	// Statement is "import" or "export".
	Statement string
	Reason    string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("invalid %s node: %s", e.Statement, e.Reason)
}

// Common invalid node reasons
const (
	ReasonNoSpecifiers        = "specifier list is empty"
	ReasonNoSource            = "source clause is required"
	ReasonEmptySource         = "source value is empty"
	ReasonDeclarationConflict = "declaration and specifier list are mutually exclusive"
	ReasonDefaultWithoutDecl  = "default export requires a declaration"
	ReasonMarkerPosition      = "%s specifier at position %d"
	ReasonEmptyName           = "%s specifier at position %d has no name"
	ReasonNoDeclaration       = "export has neither declaration nor specifiers"
	ReasonDeclarationSource   = "declaration export cannot have a source clause"
	ReasonNamespaceExtra      = "export-all cannot be combined with other specifiers"
	ReasonMixedClause         = "default and namespace specifiers cannot be followed by a brace list"
	ReasonNotIdentifier       = "%s specifier at position %d binds %q, which is not an identifier"
	ReasonNameEncoding        = "%s specifier at position %d has a name that is not valid UTF-8"
	ReasonSourceEncoding      = "source value is not valid UTF-8"
)

func invalid(stmt, format string, args ...any) *InvalidNodeError {
	return &InvalidNodeError{Statement: stmt, Reason: fmt.Sprintf(format, args...)}
}

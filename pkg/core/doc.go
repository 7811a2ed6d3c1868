// Package core defines the normalized AST shared by every esmgen component.
//
// This package contains:
//   - Module statements (ImportDecl, ExportDecl) and their specifiers
//   - The opaque fragment type used for nested declarations (Node, Fragment)
//   - Structural validation (InvalidNodeError)
//
// Dialect adapters in pkg/dialects/* produce these types; pkg/format
// consumes them. pkg/core imports ONLY the standard library.
package core

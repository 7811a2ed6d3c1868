package core

import "unicode/utf8"

// Validate checks the import invariants.
func (n *ImportDecl) Validate() error {
	const stmt = "import"
	if n == nil || len(n.Specifiers) == 0 {
		return invalid(stmt, ReasonNoSpecifiers)
	}
	if err := validateSource(stmt, n.Source, true); err != nil {
		return err
	}
	return validateClause(stmt, n.Specifiers)
}

// Validate checks the export invariants.
func (n *ExportDecl) Validate() error {
	const stmt = "export"
	if n == nil {
		return invalid(stmt, ReasonNoDeclaration)
	}

	if n.Declaration != nil {
		if len(n.Specifiers) > 0 {
			return invalid(stmt, ReasonDeclarationConflict)
		}
		if n.Source != nil {
			return invalid(stmt, ReasonDeclarationSource)
		}
		return nil
	}

	if n.Default {
		return invalid(stmt, ReasonDefaultWithoutDecl)
	}
	if len(n.Specifiers) == 0 {
		return invalid(stmt, ReasonNoDeclaration)
	}

	switch n.Specifiers[0].Kind {
	case SpecifierNamespace:
		if len(n.Specifiers) > 1 {
			return invalid(stmt, ReasonNamespaceExtra)
		}
		if !utf8.ValidString(n.Specifiers[0].Bound) {
			return invalid(stmt, ReasonNameEncoding, SpecifierNamespace, 0)
		}
		return validateSource(stmt, n.Source, true)
	case SpecifierDefault:
		return invalid(stmt, ReasonDefaultWithoutDecl)
	}

	for i, s := range n.Specifiers {
		if s.Kind != SpecifierPlain {
			return invalid(stmt, ReasonMarkerPosition, s.Kind, i)
		}
		if err := validateNames(stmt, i, s); err != nil {
			return err
		}
		// Without a source clause Local refers to a binding in this module.
		if n.Source == nil && !IsIdentifierName(s.Local) {
			return invalid(stmt, ReasonNotIdentifier, s.Kind, i, s.Local)
		}
	}
	return validateSource(stmt, n.Source, false)
}

func validateSource(stmt string, src *Source, required bool) error {
	if src == nil {
		if required {
			return invalid(stmt, ReasonNoSource)
		}
		return nil
	}
	if src.Raw == "" && src.Value == "" {
		return invalid(stmt, ReasonEmptySource)
	}
	if src.Raw == "" && !utf8.ValidString(src.Value) {
		return invalid(stmt, ReasonSourceEncoding)
	}
	return nil
}

func validateNames(stmt string, i int, s Specifier) error {
	if s.Local == "" || s.Bound == "" {
		return invalid(stmt, ReasonEmptyName, s.Kind, i)
	}
	if !utf8.ValidString(s.Local) || !utf8.ValidString(s.Bound) {
		return invalid(stmt, ReasonNameEncoding, s.Kind, i)
	}
	return nil
}

// validateClause checks marker placement in an import specifier list.
// Markers may lead the list; a second marker is only allowed directly after
// a marker of the other kind, and then ends the clause.
func validateClause(stmt string, specs []Specifier) error {
	for i, s := range specs {
		if s.Kind.IsMarker() {
			if s.Bound == "" {
				return invalid(stmt, ReasonEmptyName, s.Kind, i)
			}
			if !IsIdentifierName(s.Bound) {
				return invalid(stmt, ReasonNotIdentifier, s.Kind, i, s.Bound)
			}
			switch {
			case i == 0:
			case i == 1 && specs[0].Kind.IsMarker() && specs[0].Kind != s.Kind:
				if len(specs) > 2 {
					return invalid(stmt, ReasonMixedClause)
				}
			default:
				return invalid(stmt, ReasonMarkerPosition, s.Kind, i)
			}
			continue
		}
		if err := validateNames(stmt, i, s); err != nil {
			return err
		}
		if !IsIdentifierName(s.Bound) {
			return invalid(stmt, ReasonNotIdentifier, s.Kind, i, s.Bound)
		}
	}
	return nil
}

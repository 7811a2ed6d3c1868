package core

import (
	"unicode"
	"unicode/utf8"
)

// SpecifierKind classifies a binding entry in an import/export list.
type SpecifierKind int

const (
	// SpecifierPlain is a named binding (`a` or `a as b`).
	SpecifierPlain SpecifierKind = iota
	// SpecifierDefault is the default binding (`x` in `import x from`).
	SpecifierDefault
	// SpecifierNamespace is the batch binding (`* as ns`).
	SpecifierNamespace
)

// String returns the string representation of the kind.
func (k SpecifierKind) String() string {
	switch k {
	case SpecifierPlain:
		return "plain"
	case SpecifierDefault:
		return "default"
	case SpecifierNamespace:
		return "namespace"
	default:
		return "unknown"
	}
}

// IsMarker reports whether the kind is a default or namespace marker.
func (k SpecifierKind) IsMarker() bool {
	return k == SpecifierDefault || k == SpecifierNamespace
}

// Specifier is one binding entry of an import/export clause.
//
// Module export names (the imported name of an import and both names of a
// re-export) may be arbitrary strings; the printer quotes them when they
// are not identifier names. Local bindings must be identifiers.
type Specifier struct {
	Kind SpecifierKind
	// Local is the identifier in the exporting/importing scope.
	Local string
	// Bound is the name the binding is exposed or imported as.
	Bound string
}

// Plain returns a plain specifier. An empty bound collapses to local.
func Plain(local, bound string) Specifier {
	if bound == "" {
		bound = local
	}
	return Specifier{Kind: SpecifierPlain, Local: local, Bound: bound}
}

// Default returns a default specifier bound to name.
func Default(name string) Specifier {
	return Specifier{Kind: SpecifierDefault, Local: "default", Bound: name}
}

// Namespace returns a namespace specifier bound to name.
// Export-all nodes use an empty name.
func Namespace(name string) Specifier {
	return Specifier{Kind: SpecifierNamespace, Local: "*", Bound: name}
}

// Collapsed reports whether the specifier renders as a bare identifier.
func (s Specifier) Collapsed() bool {
	return s.Local == s.Bound
}

// IsIdentifierName reports whether name can be written as a bare
// IdentifierName. Reserved words count, since they are valid export names.
func IsIdentifierName(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}
	for i, r := range name {
		switch {
		case r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r):
		case i > 0 && (unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || r == '\u200c' || r == '\u200d'):
		default:
			return false
		}
	}
	return true
}

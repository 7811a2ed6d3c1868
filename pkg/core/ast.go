package core

// Node is an opaque declaration or expression fragment nested in an export.
// esmgen never renders these itself; they are handed to collaborators.
type Node interface {
	// NodeType returns the AST node type name (e.g. "FunctionDeclaration").
	NodeType() string
}

// Fragment is the Node produced by dialect adapters.
// Start and End are byte offsets into the original source text, Raw is the
// verbatim text when the AST carries it (literals do).
type Fragment struct {
	Kind  string
	Start int
	End   int
	Raw   string
}

// NodeType implements Node.
func (f *Fragment) NodeType() string { return f.Kind }

// HasRange reports whether the fragment carries a usable source range.
func (f *Fragment) HasRange() bool {
	return f.Start >= 0 && f.End > f.Start
}

// Statement is a marker interface for module statements.
type Statement interface {
	// Keyword returns "import" or "export".
	Keyword() string
	stmtNode()
}

// Source is the module path of an import or re-export.
type Source struct {
	// Value is the decoded string value of the module path.
	Value string
	// Raw is the string literal as written, quotes included, and nothing
	// else. When set it is emitted verbatim in place of the quoted Value, but
	// the renderer still supplies the ` from ` prefix and the trailing `;`.
	// ESTree's `raw` property carries exactly this text.
	Raw string
}

// ImportDecl is an import declaration.
type ImportDecl struct {
	Specifiers []Specifier
	Source     *Source
}

// ExportDecl is an export declaration.
//
// Exactly one of Declaration or Specifiers is populated. Default marks
// `export default <expr>` and is only meaningful with a Declaration.
type ExportDecl struct {
	Specifiers  []Specifier
	Source      *Source
	Declaration Node
	Default     bool
}

func (*ImportDecl) stmtNode() {}
func (*ExportDecl) stmtNode() {}

// Keyword implements Statement.
func (*ImportDecl) Keyword() string { return "import" }

// Keyword implements Statement.
func (*ExportDecl) Keyword() string { return "export" }

// IsReexport reports whether the export forwards bindings from another module.
func (n *ExportDecl) IsReexport() bool {
	return n.Declaration == nil && n.Source != nil
}

// Package dialect provides the contract for module AST dialects.
//
// Upstream parsers disagree on how import/export specifiers are tagged: some
// use a node type discriminant, others sentinel identifier names. A Dialect
// decodes one such AST shape into the normalized nodes of pkg/core so the
// renderer never inspects dialect-specific fields. Concrete dialects are
// registered from pkg/dialects/*/ packages.
package dialect

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/esmgen/pkg/core"
	"github.com/tidwall/gjson"
)

// StatementDecoder decodes one statement node of a given AST type.
type StatementDecoder func(node gjson.Result) (core.Statement, error)

// Dialect is a named set of statement decoders.
type Dialect struct {
	Name        string
	Description string

	decoders map[string]StatementDecoder
}

// Program is the result of decoding a program or statement list.
type Program struct {
	Statements []core.Statement
	// Skipped counts statements that are not import/export declarations.
	Skipped int
}

// StatementTypes returns the AST node types this dialect decodes (sorted).
func (d *Dialect) StatementTypes() []string {
	types := make([]string, 0, len(d.decoders))
	for t := range d.decoders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Handles reports whether the dialect decodes nodes of the given type.
func (d *Dialect) Handles(nodeType string) bool {
	_, ok := d.decoders[nodeType]
	return ok
}

// DecodeStatement decodes a single statement node.
// It returns false when the node is not a module statement of this dialect.
func (d *Dialect) DecodeStatement(node gjson.Result) (core.Statement, bool, error) {
	nodeType := node.Get("type").String()
	decode, ok := d.decoders[nodeType]
	if !ok {
		return nil, false, nil
	}

	stmt, err := decode(node)
	if err != nil {
		return nil, true, err
	}
	return stmt, true, nil
}

// DecodeProgram decodes every module statement reachable from root.
// root may be a Program node, an array of statements, or a single statement.
func (d *Dialect) DecodeProgram(root gjson.Result) (*Program, error) {
	var body gjson.Result
	switch {
	case root.IsArray():
		body = root
	case root.IsObject() && root.Get("type").String() == "Program":
		body = root.Get("body")
	case root.IsObject():
		body = gjson.Parse("[" + root.Raw + "]")
	default:
		return nil, fmt.Errorf("%s: expected an AST object or array, got %s", d.Name, root.Type)
	}

	prog := &Program{}
	var decodeErr error
	index := 0
	body.ForEach(func(_, node gjson.Result) bool {
		stmt, ok, err := d.DecodeStatement(node)
		switch {
		case err != nil:
			decodeErr = &DecodeError{
				Dialect: d.Name,
				Index:   index,
				Type:    node.Get("type").String(),
				Err:     err,
			}
			return false
		case ok:
			prog.Statements = append(prog.Statements, stmt)
		default:
			prog.Skipped++
		}
		index++
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return prog, nil
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name:     name,
			decoders: make(map[string]StatementDecoder),
		},
	}
}

// Describe sets the human-readable description.
func (b *Builder) Describe(description string) *Builder {
	b.dialect.Description = description
	return b
}

// Statement registers a decoder for the given AST node types.
func (b *Builder) Statement(decode StatementDecoder, nodeTypes ...string) *Builder {
	for _, t := range nodeTypes {
		b.dialect.decoders[t] = decode
	}
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}

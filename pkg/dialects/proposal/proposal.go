// Package proposal provides the module proposal AST dialect.
//
// Specifiers are untyped; default and namespace bindings are tagged by
// sentinel identifier names ("*default*" and "*"), and a default
// declaration export by a leading specifier whose id is "default".
package proposal

import (
	"github.com/leapstack-labs/esmgen/pkg/core"
	"github.com/leapstack-labs/esmgen/pkg/dialect"
	"github.com/tidwall/gjson"
)

// Sentinel identifier names.
const (
	DefaultID   = "*default*"
	NamespaceID = "*"
	ExportID    = "default"
)

func init() {
	dialect.Register(Proposal)
}

// Proposal is the sentinel-tagged proposal dialect.
var Proposal = dialect.NewDialect("proposal").
	Describe("Module proposal AST; default/namespace tagged by sentinel ids *default* and *").
	Statement(decodeImport, "ImportDeclaration").
	Statement(decodeExport, "ExportDeclaration").
	Build()

func decodeImport(node gjson.Result) (core.Statement, error) {
	specs, err := dialect.DecodeSpecifiers(node.Get("specifiers"), func(s gjson.Result) (core.Specifier, error) {
		id := dialect.Name(s.Get("id"))
		name := dialect.Name(s.Get("name"))
		switch id {
		case DefaultID:
			return core.Default(name), nil
		case NamespaceID:
			return core.Namespace(name), nil
		default:
			return core.Plain(id, name), nil
		}
	})
	if err != nil {
		return nil, err
	}
	return &core.ImportDecl{
		Specifiers: specs,
		Source:     dialect.DecodeSource(node.Get("source")),
	}, nil
}

func decodeExport(node gjson.Result) (core.Statement, error) {
	specifiers := node.Get("specifiers")

	if decl := dialect.DecodeFragment(node.Get("declaration")); decl != nil {
		return &core.ExportDecl{
			Declaration: decl,
			Default:     dialect.Name(specifiers.Get("0.id")) == ExportID,
		}, nil
	}

	specs, err := dialect.DecodeSpecifiers(specifiers, func(s gjson.Result) (core.Specifier, error) {
		id := dialect.Name(s.Get("id"))
		if id == NamespaceID {
			return core.Namespace(""), nil
		}
		return core.Plain(id, dialect.Name(s.Get("name"))), nil
	})
	if err != nil {
		return nil, err
	}
	return &core.ExportDecl{
		Specifiers: specs,
		Source:     dialect.DecodeSource(node.Get("source")),
	}, nil
}

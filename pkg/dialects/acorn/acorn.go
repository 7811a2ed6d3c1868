// Package acorn provides the legacy Acorn module AST dialect.
//
// Specifiers carry `id` (the local identifier) and `name` (the bound name,
// null when identical). Namespace specifiers are tagged by node type
// (ImportBatchSpecifier, ExportBatchSpecifier) and default specifiers by a
// `default: true` flag.
package acorn

import (
	"fmt"

	"github.com/leapstack-labs/esmgen/pkg/core"
	"github.com/leapstack-labs/esmgen/pkg/dialect"
	"github.com/tidwall/gjson"
)

func init() {
	dialect.Register(Acorn)
}

// Acorn is the legacy Acorn dialect.
var Acorn = dialect.NewDialect("acorn").
	Describe("Legacy Acorn AST; default/namespace tagged by specifier type and default flag").
	Statement(decodeImport, "ImportDeclaration").
	Statement(decodeExport, "ExportDeclaration").
	Build()

func decodeImport(node gjson.Result) (core.Statement, error) {
	specs, err := dialect.DecodeSpecifiers(node.Get("specifiers"), importSpecifier)
	if err != nil {
		return nil, err
	}
	return &core.ImportDecl{
		Specifiers: specs,
		Source:     dialect.DecodeSource(node.Get("source")),
	}, nil
}

func importSpecifier(s gjson.Result) (core.Specifier, error) {
	id := dialect.Name(s.Get("id"))
	name := dialect.Name(s.Get("name"))

	switch typ := s.Get("type").String(); {
	case typ == "ImportBatchSpecifier":
		return core.Namespace(name), nil
	case typ == "ImportDefaultSpecifier" || s.Get("default").Bool():
		if name == "" {
			name = id
		}
		return core.Default(name), nil
	case typ == "ImportSpecifier":
		return core.Plain(id, name), nil
	default:
		return core.Specifier{}, fmt.Errorf("unexpected import specifier type %q", typ)
	}
}

func decodeExport(node gjson.Result) (core.Statement, error) {
	specifiers := node.Get("specifiers")

	if decl := dialect.DecodeFragment(node.Get("declaration")); decl != nil {
		return &core.ExportDecl{
			Declaration: decl,
			Default:     node.Get("default").Bool() || specifiers.Get("0.default").Bool(),
		}, nil
	}

	specs, err := dialect.DecodeSpecifiers(specifiers, exportSpecifier)
	if err != nil {
		return nil, err
	}
	return &core.ExportDecl{
		Specifiers: specs,
		Source:     dialect.DecodeSource(node.Get("source")),
	}, nil
}

func exportSpecifier(s gjson.Result) (core.Specifier, error) {
	switch typ := s.Get("type").String(); typ {
	case "ExportBatchSpecifier":
		return core.Namespace(""), nil
	case "ExportSpecifier":
		return core.Plain(dialect.Name(s.Get("id")), dialect.Name(s.Get("name"))), nil
	default:
		return core.Specifier{}, fmt.Errorf("unexpected export specifier type %q", typ)
	}
}

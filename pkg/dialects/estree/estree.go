// Package estree provides the ES2020 ESTree module dialect emitted by
// current Acorn, Espree and Babel (estree plugin) releases.
package estree

import (
	"fmt"

	"github.com/leapstack-labs/esmgen/pkg/core"
	"github.com/leapstack-labs/esmgen/pkg/dialect"
	"github.com/tidwall/gjson"
)

func init() {
	dialect.Register(ESTree)
}

// ESTree is the standard ESTree dialect.
var ESTree = dialect.NewDialect("estree").
	Describe("ESTree (ES2020); default/namespace tagged by specifier node type").
	Statement(decodeImport, "ImportDeclaration").
	Statement(decodeNamedExport, "ExportNamedDeclaration").
	Statement(decodeDefaultExport, "ExportDefaultDeclaration").
	Statement(decodeExportAll, "ExportAllDeclaration").
	Build()

func decodeImport(node gjson.Result) (core.Statement, error) {
	specs, err := dialect.DecodeSpecifiers(node.Get("specifiers"), func(s gjson.Result) (core.Specifier, error) {
		local := dialect.Name(s.Get("local"))
		switch typ := s.Get("type").String(); typ {
		case "ImportDefaultSpecifier":
			return core.Default(local), nil
		case "ImportNamespaceSpecifier":
			return core.Namespace(local), nil
		case "ImportSpecifier":
			return core.Plain(dialect.Name(s.Get("imported")), local), nil
		default:
			return core.Specifier{}, fmt.Errorf("unexpected import specifier type %q", typ)
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

func decodeNamedExport(node gjson.Result) (core.Statement, error) {
	if decl := dialect.DecodeFragment(node.Get("declaration")); decl != nil {
		return &core.ExportDecl{Declaration: decl}, nil
	}

	specs, err := dialect.DecodeSpecifiers(node.Get("specifiers"), func(s gjson.Result) (core.Specifier, error) {
		if typ := s.Get("type").String(); typ != "ExportSpecifier" {
			return core.Specifier{}, fmt.Errorf("unexpected export specifier type %q", typ)
		}
		return core.Plain(dialect.Name(s.Get("local")), dialect.Name(s.Get("exported"))), nil
	})
	if err != nil {
		return nil, err
	}
	return &core.ExportDecl{
		Specifiers: specs,
		Source:     dialect.DecodeSource(node.Get("source")),
	}, nil
}

func decodeDefaultExport(node gjson.Result) (core.Statement, error) {
	n := &core.ExportDecl{Default: true}
	if decl := dialect.DecodeFragment(node.Get("declaration")); decl != nil {
		n.Declaration = decl
	}
	return n, nil
}

func decodeExportAll(node gjson.Result) (core.Statement, error) {
	return &core.ExportDecl{
		Specifiers: []core.Specifier{core.Namespace(dialect.Name(node.Get("exported")))},
		Source:     dialect.DecodeSource(node.Get("source")),
	}, nil
}

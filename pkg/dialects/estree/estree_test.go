package estree

import (
	"testing"

	"github.com/leapstack-labs/esmgen/pkg/core"
	"github.com/leapstack-labs/esmgen/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestESTree_Render(t *testing.T) {
	raw := func(n core.Node) (string, error) { return n.(*core.Fragment).Raw, nil }
	opts := format.Options{
		Declarations: format.DeclarationFunc(raw),
		Expressions:  format.ExpressionFunc(raw),
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "named imports",
			input: `{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","imported":{"type":"Identifier","name":"a"},"local":{"type":"Identifier","name":"b"}},
				{"type":"ImportSpecifier","imported":{"name":"c"},"local":{"name":"c"}}],
				"source":{"type":"Literal","value":"mod","raw":"\"mod\""}}`,
			expected: `import {a as b,c} from "mod";`,
		},
		{
			name: "default and namespace",
			input: `{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportDefaultSpecifier","local":{"name":"x"}},
				{"type":"ImportNamespaceSpecifier","local":{"name":"y"}}],
				"source":{"value":"mod"}}`,
			expected: `import x, * as y from "mod";`,
		},
		{
			name: "string literal import name",
			input: `{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","imported":{"type":"Literal","value":"a-b"},"local":{"name":"ab"}}],
				"source":{"value":"mod"}}`,
			expected: `import {"a-b" as ab} from "mod";`,
		},
		{
			name: "string literal export name",
			input: `{"type":"ExportNamedDeclaration","declaration":null,"source":null,"specifiers":[
				{"type":"ExportSpecifier","local":{"type":"Identifier","name":"a"},"exported":{"type":"Literal","value":"a-b","raw":"\"a-b\""}}]}`,
			expected: `export {a as "a-b"};`,
		},
		{
			name: "string literal names in re-export",
			input: `{"type":"ExportNamedDeclaration","declaration":null,"specifiers":[
				{"type":"ExportSpecifier","local":{"type":"Literal","value":"a-b"},"exported":{"type":"Literal","value":"a-b"}}],
				"source":{"value":"mod"}}`,
			expected: `export {"a-b"} from "mod";`,
		},
		{
			name:     "export all as string literal",
			input:    `{"type":"ExportAllDeclaration","exported":{"type":"Literal","value":"a b"},"source":{"value":"mod"}}`,
			expected: `export * as "a b" from "mod";`,
		},
		{
			name: "string literal that is an identifier",
			input: `{"type":"ExportNamedDeclaration","declaration":null,"source":null,"specifiers":[
				{"type":"ExportSpecifier","local":{"name":"a"},"exported":{"type":"Literal","value":"b"}}]}`,
			expected: `export {a as b};`,
		},
		{
			name:     "export all",
			input:    `{"type":"ExportAllDeclaration","exported":null,"source":{"value":"mod"}}`,
			expected: `export * from "mod";`,
		},
		{
			name:     "export all as namespace",
			input:    `{"type":"ExportAllDeclaration","exported":{"name":"ns"},"source":{"value":"mod"}}`,
			expected: `export * as ns from "mod";`,
		},
		{
			name:     "export default",
			input:    `{"type":"ExportDefaultDeclaration","declaration":{"type":"Literal","value":5,"raw":"5"}}`,
			expected: `export default 5;`,
		},
		{
			name: "export declaration",
			input: `{"type":"ExportNamedDeclaration","specifiers":[],"source":null,
				"declaration":{"type":"ClassDeclaration","raw":"class A {}"}}`,
			expected: `export class A {};`,
		},
		{
			name: "re-export",
			input: `{"type":"ExportNamedDeclaration","declaration":null,"specifiers":[
				{"type":"ExportSpecifier","local":{"name":"a"},"exported":{"name":"b"}}],
				"source":{"value":"it's"}}`,
			expected: `export {a as b} from "it's";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, ok, err := ESTree.DecodeStatement(gjson.Parse(tt.input))
			require.NoError(t, err)
			require.True(t, ok)

			result, err := format.Statement(stmt, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestESTree_StringLiteralLocalIsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "import binding",
			input: `{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","imported":{"name":"a"},"local":{"type":"Literal","value":"a-b"}}],
				"source":{"value":"mod"}}`,
		},
		{
			name: "local export",
			input: `{"type":"ExportNamedDeclaration","declaration":null,"source":null,"specifiers":[
				{"type":"ExportSpecifier","local":{"type":"Literal","value":"a-b"},"exported":{"name":"c"}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, ok, err := ESTree.DecodeStatement(gjson.Parse(tt.input))
			require.NoError(t, err)
			require.True(t, ok)

			_, err = format.Statement(stmt, format.Options{})
			var invalidErr *core.InvalidNodeError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestESTree_SideEffectImportIsInvalid(t *testing.T) {
	stmt, ok, err := ESTree.DecodeStatement(gjson.Parse(`{"type":"ImportDeclaration","specifiers":[],"source":{"value":"mod"}}`))
	require.NoError(t, err)
	require.True(t, ok)

	_, err = format.Statement(stmt, format.Options{})
	var invalidErr *core.InvalidNodeError
	assert.ErrorAs(t, err, &invalidErr)
}

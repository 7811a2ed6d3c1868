package acorn

import (
	"testing"

	"github.com/leapstack-labs/esmgen/pkg/core"
	"github.com/leapstack-labs/esmgen/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func raw(n core.Node) (string, error) { return n.(*core.Fragment).Raw, nil }

func TestAcorn_Render(t *testing.T) {
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
			name: "named import",
			input: `{"type":"ImportDeclaration",
				"specifiers":[{"type":"ImportSpecifier","id":{"type":"Identifier","name":"a"},"name":null}],
				"source":{"type":"Literal","value":"mod"}}`,
			expected: `import {a} from "mod";`,
		},
		{
			name: "renamed import",
			input: `{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","id":{"name":"a"},"name":{"name":"b"}},
				{"type":"ImportSpecifier","id":{"name":"c"},"name":{"name":"c"}}],
				"source":{"value":"mod"}}`,
			expected: `import {a as b,c} from "mod";`,
		},
		{
			name: "default and batch",
			input: `{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","id":{"name":"x"},"name":null,"default":true},
				{"type":"ImportBatchSpecifier","name":{"name":"y"}}],
				"source":{"value":"mod"}}`,
			expected: `import x, * as y from "mod";`,
		},
		{
			name: "default and brace list",
			input: `{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","id":{"name":"x"},"default":true},
				{"type":"ImportSpecifier","id":{"name":"a"},"name":{"name":"b"}}],
				"source":{"value":"mod","raw":"'mod'"}}`,
			expected: `import x, {a as b} from 'mod';`,
		},
		{
			name: "export batch",
			input: `{"type":"ExportDeclaration","declaration":null,
				"specifiers":[{"type":"ExportBatchSpecifier"}],
				"source":{"value":"mod"}}`,
			expected: `export * from "mod";`,
		},
		{
			name: "export default",
			input: `{"type":"ExportDeclaration","default":true,
				"declaration":{"type":"Literal","value":5,"raw":"5"}}`,
			expected: `export default 5;`,
		},
		{
			name: "export default via specifier flag",
			input: `{"type":"ExportDeclaration","specifiers":[{"type":"ExportSpecifier","default":true}],
				"declaration":{"type":"Literal","value":5,"raw":"5"}}`,
			expected: `export default 5;`,
		},
		{
			name: "export declaration",
			input: `{"type":"ExportDeclaration","default":false,
				"declaration":{"type":"FunctionDeclaration","raw":"function f() {}"}}`,
			expected: `export function f() {};`,
		},
		{
			name: "export list",
			input: `{"type":"ExportDeclaration","declaration":null,"specifiers":[
				{"type":"ExportSpecifier","id":{"name":"a"},"name":null},
				{"type":"ExportSpecifier","id":{"name":"b"},"name":{"name":"c"}}],
				"source":null}`,
			expected: `export {a,b as c};`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, ok, err := Acorn.DecodeStatement(gjson.Parse(tt.input))
			require.NoError(t, err)
			require.True(t, ok)

			result, err := format.Statement(stmt, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAcorn_UnknownSpecifier(t *testing.T) {
	_, ok, err := Acorn.DecodeStatement(gjson.Parse(`{"type":"ImportDeclaration","specifiers":[{"type":"Weird"}]}`))
	assert.True(t, ok)
	assert.ErrorContains(t, err, `"Weird"`)
}

func TestAcorn_IgnoresModernTypes(t *testing.T) {
	_, ok, err := Acorn.DecodeStatement(gjson.Parse(`{"type":"ExportNamedDeclaration"}`))
	require.NoError(t, err)
	assert.False(t, ok)
}

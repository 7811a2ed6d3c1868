package dialects

import (
	"testing"

	"github.com/leapstack-labs/esmgen/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestBuiltinsRegistered(t *testing.T) {
	names := dialect.List()
	for _, want := range []string{"acorn", "estree", "proposal"} {
		assert.Contains(t, names, want)
	}

	_, ok := dialect.Get(Default)
	assert.True(t, ok, "default dialect must be registered")
}

// The same module written in each dialect decodes to identical nodes.
func TestDialectsAgree(t *testing.T) {
	inputs := map[string]string{
		"acorn": `[
			{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","id":{"name":"x"},"default":true},
				{"type":"ImportBatchSpecifier","name":{"name":"y"}}],"source":{"value":"mod"}},
			{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","id":{"name":"a"},"name":{"name":"b"}}],"source":{"value":"mod"}},
			{"type":"ExportDeclaration","specifiers":[{"type":"ExportBatchSpecifier"}],"source":{"value":"dep"}},
			{"type":"ExportDeclaration","specifiers":[
				{"type":"ExportSpecifier","id":{"name":"a"},"name":null}],"source":null}
		]`,
		"proposal": `[
			{"type":"ImportDeclaration","specifiers":[
				{"id":{"name":"*default*"},"name":{"name":"x"}},
				{"id":{"name":"*"},"name":{"name":"y"}}],"source":{"value":"mod"}},
			{"type":"ImportDeclaration","specifiers":[
				{"id":{"name":"a"},"name":{"name":"b"}}],"source":{"value":"mod"}},
			{"type":"ExportDeclaration","specifiers":[{"id":{"name":"*"}}],"source":{"value":"dep"}},
			{"type":"ExportDeclaration","specifiers":[
				{"id":{"name":"a"},"name":{"name":"a"}}]}
		]`,
		"estree": `[
			{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportDefaultSpecifier","local":{"name":"x"}},
				{"type":"ImportNamespaceSpecifier","local":{"name":"y"}}],"source":{"value":"mod"}},
			{"type":"ImportDeclaration","specifiers":[
				{"type":"ImportSpecifier","imported":{"name":"a"},"local":{"name":"b"}}],"source":{"value":"mod"}},
			{"type":"ExportAllDeclaration","exported":null,"source":{"value":"dep"}},
			{"type":"ExportNamedDeclaration","declaration":null,"specifiers":[
				{"type":"ExportSpecifier","local":{"name":"a"},"exported":{"name":"a"}}],"source":null}
		]`,
	}

	var reference *dialect.Program
	for _, name := range []string{"acorn", "proposal", "estree"} {
		d, err := dialect.Resolve(name)
		require.NoError(t, err)

		prog, err := d.DecodeProgram(gjson.Parse(inputs[name]))
		require.NoError(t, err, name)
		require.Len(t, prog.Statements, 4, name)

		if reference == nil {
			reference = prog
			continue
		}
		assert.Equal(t, reference.Statements, prog.Statements, "%s disagrees with acorn", name)
	}
}

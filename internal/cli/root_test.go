package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/esmgen/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("..", "engine", "testdata")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	cfgFile = ""

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"render", "dialects", "version", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"config", "dialect", "check", "verbose", "output", "concurrency"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRoot_Render(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := filepath.Join(wd, testdata)
	t.Chdir(t.TempDir())

	out, err := run(t, "render",
		"--dialect", "estree", "--output", "text", "--check",
		filepath.Join(dir, "estree_module.json"),
		"--source", filepath.Join(dir, "module.js"))
	require.NoError(t, err)
	assert.Equal(t, "import x, * as y from \"mod\";\nexport function f() { return 1; };\nexport default 40 + 2;\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	astFile := filepath.Join(wd, testdata, "proposal_imports.yaml")

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, "esmgen.yaml"), []byte("dialect: proposal\noutput: text\n"), 0600))
	t.Chdir(project)

	out, err := run(t, "render", astFile)
	require.NoError(t, err)
	assert.Equal(t, "import x, {a} from 'it\\'s \"ok\"';\nexport {a as b};\n", out)
}

func TestRoot_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "dialects", "--dialect", "swc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect "swc"`)

	_, err = run(t, "dialects", "--output", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCompletionCommand(t *testing.T) {
	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "esmgen")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestGetConfig_Default(t *testing.T) {
	cfg := GetConfig(context.Background())
	assert.Equal(t, config.DefaultDialect, cfg.Dialect)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
}

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/esmgen/internal/cli/output"
	"github.com/leapstack-labs/esmgen/pkg/dialect"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DialectInfo is the JSON output for one dialect.
type DialectInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Statements  []string `json:"statements"`
	Active      bool     `json:"active"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported AST dialects",
		Long: `List the module AST dialects esmgen can decode.

Dialects differ in how default and namespace specifiers are tagged.
The active dialect is selected with --dialect or the dialect key in esmgen.yaml.

Output adapts to environment:
  - Terminal: Table
  - Piped/Scripted: Markdown list
  - JSON: Machine-readable format`,
		Example: `  # List dialects
  esmgen dialects

  # Output as JSON
  esmgen dialects --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd)
		},
	}
}

func runDialects(cmd *cobra.Command) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	active, err := dialect.Resolve(cmdCtx.Cfg.Dialect)
	if err != nil {
		return err
	}

	var infos []DialectInfo
	for _, d := range dialect.All() {
		infos = append(infos, DialectInfo{
			Name:        d.Name,
			Description: d.Description,
			Statements:  d.StatementTypes(),
			Active:      d == active,
		})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeMarkdown:
		title := cases.Title(language.English)
		r.Println(output.FormatHeader(1, fmt.Sprintf("Dialects (%d)", len(infos))))
		r.Println("")
		for _, info := range infos {
			name := title.String(info.Name)
			if info.Active {
				name += " (active)"
			}
			r.Println(output.FormatKeyValue(name, info.Description))
			r.Printf("  - Statements: %s\n", strings.Join(info.Statements, ", "))
		}
		return nil
	default:
		renderDialectTable(r.Writer(), infos)
		return nil
	}
}

func renderDialectTable(w io.Writer, infos []DialectInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Active", "Statements", "Description"})
	for _, info := range infos {
		active := ""
		if info.Active {
			active = "*"
		}
		t.AppendRow(table.Row{info.Name, active, strings.Join(info.Statements, "\n"), info.Description})
	}
	t.Render()
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/leapstack-labs/esmgen/internal/cli/output"
	"github.com/leapstack-labs/esmgen/internal/engine"
	"github.com/spf13/cobra"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Source string // Module source the AST was parsed from
	Watch  bool   // Re-render on file changes
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}
	cmd := &cobra.Command{
		Use:   "render <ast-file>...",
		Short: "Render import/export statements from AST files",
		Long: `Render the import and export declarations of one or more module ASTs
back into source text.

AST files are JSON (or YAML) documents holding a Program node, an array of
statements, or a single statement. Statements other than import/export
declarations are skipped. Exported declarations and default expressions are
rendered from their raw text or, with --source, sliced from the module source.

Output adapts to environment:
  - Terminal: Plain statements
  - Piped/Scripted: Markdown with a js code block per file
  - JSON: [{file, statements, skipped}]`,
		Example: `  # Render an acorn AST
  esmgen render ast.json

  # Render an ESTree AST, slicing declarations from the source
  esmgen render --dialect estree ast.json --source module.js

  # Verify every statement parses
  esmgen render --check a.json b.json

  # Re-render on change
  esmgen render --watch ast.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Module source file the AST was parsed from (single AST file only)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch AST and source files and re-render on change")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *RenderOptions) error {
	if opts.Source != "" && len(args) != 1 {
		return errors.New("--source requires exactly one AST file")
	}

	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	eng := cmdCtx.Engine
	r := cmdCtx.Renderer

	inputs := make([]engine.FileInput, len(args))
	for i, path := range args {
		inputs[i] = engine.FileInput{Path: path, SourcePath: opts.Source}
	}

	if opts.Watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchRender(ctx, eng, r, inputs)
	}

	results, err := eng.RenderFiles(cmd.Context(), inputs)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return printResults(r, results)
}

func watchRender(ctx context.Context, eng *engine.Engine, r *output.Renderer, inputs []engine.FileInput) error {
	var mu sync.Mutex
	return eng.Watch(ctx, inputs, func(res *engine.FileResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			r.Error(err.Error())
			return
		}
		if err := printResults(r, []*engine.FileResult{res}); err != nil {
			r.Error(err.Error())
		}
	})
}

func printResults(r *output.Renderer, results []*engine.FileResult) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(results)
	case output.ModeMarkdown:
		for i, res := range results {
			if i > 0 {
				r.Println("")
			}
			r.Println(output.FormatHeader(2, res.File))
			r.Println("")
			r.Println(output.FormatCodeBlock("js", strings.Join(res.Statements, "\n")))
			if res.Skipped > 0 {
				r.Println("")
				r.Println(output.FormatKeyValue("Skipped", fmt.Sprintf("%d non-module statements", res.Skipped)))
			}
		}
	default:
		// Text mode: statements only, with a header per file when there are several
		for _, res := range results {
			if len(results) > 1 {
				r.Header(2, res.File)
			}
			for _, stmt := range res.Statements {
				r.Println(stmt)
			}
		}
	}
	return nil
}

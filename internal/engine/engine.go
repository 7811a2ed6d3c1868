// Package engine renders module statements from AST files.
// It handles loading, dialect decoding, rendering, fan-out and watch mode.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/leapstack-labs/esmgen/internal/verify"
	"github.com/leapstack-labs/esmgen/pkg/dialect"
	"github.com/leapstack-labs/esmgen/pkg/format"
	"github.com/leapstack-labs/esmgen/pkg/source"
	"golang.org/x/sync/errgroup"
)

// Defaults applied when Config leaves a field zero.
const (
	DefaultConcurrency   = 4
	DefaultWatchDebounce = 100 * time.Millisecond
)

// Engine renders AST files with a single dialect.
type Engine struct {
	dialect       *dialect.Dialect
	check         bool
	concurrency   int
	watchDebounce time.Duration
	logger        *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Dialect decodes the input ASTs (required)
	Dialect *dialect.Dialect
	// Check parses every rendered statement and fails on syntax errors
	Check bool
	// Concurrency bounds RenderFiles fan-out
	Concurrency int
	// WatchDebounce delays re-rendering after a file change
	WatchDebounce time.Duration
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// FileInput names an AST file and, optionally, the source it was parsed from.
type FileInput struct {
	Path       string
	SourcePath string
}

// FileResult holds the rendered statements of one AST file.
type FileResult struct {
	File       string   `json:"file"`
	Statements []string `json:"statements"`
	Skipped    int      `json:"skipped"`
}

// New creates a new engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Dialect == nil {
		return nil, dialect.ErrDialectRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	debounce := cfg.WatchDebounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	logger.Debug("initializing engine", "dialect", cfg.Dialect.Name, "check", cfg.Check, "concurrency", concurrency)

	return &Engine{
		dialect:       cfg.Dialect,
		check:         cfg.Check,
		concurrency:   concurrency,
		watchDebounce: debounce,
		logger:        logger,
	}, nil
}

// Dialect returns the engine's dialect.
func (e *Engine) Dialect() *dialect.Dialect {
	return e.dialect
}

// RenderFile loads, decodes and renders one AST file.
func (e *Engine) RenderFile(ctx context.Context, in FileInput) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := Load(in.Path)
	if err != nil {
		return nil, err
	}

	var text string
	if in.SourcePath != "" {
		data, err := os.ReadFile(in.SourcePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read source %s: %w", in.SourcePath, err)
		}
		text = string(data)
	}

	prog, err := e.dialect.DecodeProgram(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.Path, err)
	}

	statements, err := e.Render(prog, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.Path, err)
	}

	e.logger.Debug("rendered file", "path", in.Path, "statements", len(statements), "skipped", prog.Skipped)

	return &FileResult{
		File:       in.Path,
		Statements: statements,
		Skipped:    prog.Skipped,
	}, nil
}

// Render renders every statement of a decoded program. text is the original
// module source used for declaration fragments without raw text.
func (e *Engine) Render(prog *dialect.Program, text string) ([]string, error) {
	r := source.Renderer{Text: text}
	opts := format.Options{Declarations: r, Expressions: r}

	statements := make([]string, 0, len(prog.Statements))
	for i, stmt := range prog.Statements {
		out, err := format.Statement(stmt, opts)
		if err != nil {
			return nil, fmt.Errorf("%s statement %d: %w", stmt.Keyword(), i, err)
		}
		if e.check {
			if err := verify.Check(out); err != nil {
				return nil, fmt.Errorf("%s statement %d: %w", stmt.Keyword(), i, err)
			}
		}
		statements = append(statements, out)
	}
	return statements, nil
}

// RenderFiles renders inputs concurrently. Results keep input order; the
// first error cancels the remaining work.
func (e *Engine) RenderFiles(ctx context.Context, inputs []FileInput) ([]*FileResult, error) {
	results := make([]*FileResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			res, err := e.RenderFile(gctx, in)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("render completed", "files", len(inputs))
	return results, nil
}

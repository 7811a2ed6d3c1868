// Package source renders nested declaration and expression fragments by
// reusing the text they were parsed from.
package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/esmgen/pkg/core"
)

// ErrFragmentUnavailable is returned when a fragment carries neither raw text
// nor a range inside the available source text.
var ErrFragmentUnavailable = errors.New("fragment text unavailable")

// Renderer implements format.DeclarationRenderer and format.ExpressionRenderer.
// Text is the original module source; it may be empty when every fragment
// carries its own raw text.
type Renderer struct {
	Text string
}

// RenderDeclaration returns the declaration text without a trailing semicolon.
func (r Renderer) RenderDeclaration(n core.Node) (string, error) {
	text, err := r.text(n)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "; \t\r\n"), nil
}

// RenderExpression returns the expression text.
func (r Renderer) RenderExpression(n core.Node) (string, error) {
	text, err := r.text(n)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "; \t\r\n"), nil
}

func (r Renderer) text(n core.Node) (string, error) {
	frag, ok := n.(*core.Fragment)
	if !ok || frag == nil {
		return "", fmt.Errorf("%w: unsupported node %T", ErrFragmentUnavailable, n)
	}
	if frag.Raw != "" {
		return frag.Raw, nil
	}
	if !frag.HasRange() {
		return "", fmt.Errorf("%w: %s has no raw text or range", ErrFragmentUnavailable, frag.Kind)
	}
	if frag.End > len(r.Text) {
		return "", fmt.Errorf("%w: %s range [%d,%d) exceeds source length %d",
			ErrFragmentUnavailable, frag.Kind, frag.Start, frag.End, len(r.Text))
	}
	return strings.TrimSpace(r.Text[frag.Start:frag.End]), nil
}

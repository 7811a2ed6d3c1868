package format

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/esmgen/pkg/core"
)

// DeclarationRenderer renders a function, class or variable declaration
// without a trailing semicolon.
type DeclarationRenderer interface {
	RenderDeclaration(n core.Node) (string, error)
}

// ExpressionRenderer renders an expression.
type ExpressionRenderer interface {
	RenderExpression(n core.Node) (string, error)
}

// DeclarationFunc adapts a function to DeclarationRenderer.
type DeclarationFunc func(n core.Node) (string, error)

// RenderDeclaration implements DeclarationRenderer.
func (f DeclarationFunc) RenderDeclaration(n core.Node) (string, error) { return f(n) }

// ExpressionFunc adapts a function to ExpressionRenderer.
type ExpressionFunc func(n core.Node) (string, error)

// RenderExpression implements ExpressionRenderer.
func (f ExpressionFunc) RenderExpression(n core.Node) (string, error) { return f(n) }

// Options supplies the collaborators used for exports with an inline
// declaration. Imports and specifier exports need none.
type Options struct {
	Declarations DeclarationRenderer
	Expressions  ExpressionRenderer
}

// ErrNoRenderer is wrapped when an export needs a collaborator that was not supplied.
var ErrNoRenderer = errors.New("no renderer configured")

// Import renders an import declaration.
func Import(n *core.ImportDecl) (string, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}

	p := newPrinter(Options{})
	p.write("import ")
	p.formatClause(n.Specifiers)
	p.formatFrom(n.Source)
	return p.String(), nil
}

// Export renders an export declaration.
func Export(n *core.ExportDecl, opts Options) (string, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}

	p := newPrinter(opts)
	if n.Declaration != nil {
		if err := p.formatDeclarationExport(n); err != nil {
			return "", err
		}
		return p.String(), nil
	}

	p.write("export ")
	if n.Specifiers[0].Kind == core.SpecifierNamespace {
		p.write("*")
		if name := n.Specifiers[0].Bound; name != "" {
			p.write(" as ")
			p.formatName(name)
		}
		p.formatFrom(n.Source)
		return p.String(), nil
	}

	p.formatBraceList(n.Specifiers)
	if n.Source != nil {
		p.formatFrom(n.Source)
	} else {
		p.write(";")
	}
	return p.String(), nil
}

// Statement renders an import or export declaration.
func Statement(s core.Statement, opts Options) (string, error) {
	switch n := s.(type) {
	case *core.ImportDecl:
		return Import(n)
	case *core.ExportDecl:
		return Export(n, opts)
	default:
		return "", fmt.Errorf("unsupported statement type %T", s)
	}
}

func (p *Printer) formatDeclarationExport(n *core.ExportDecl) error {
	if n.Default {
		if p.opts.Expressions == nil {
			return fmt.Errorf("export default: %w", ErrNoRenderer)
		}
		expr, err := p.opts.Expressions.RenderExpression(n.Declaration)
		if err != nil {
			return fmt.Errorf("failed to render default export %s: %w", n.Declaration.NodeType(), err)
		}
		p.write("export default ")
		p.write(expr)
		p.write(";")
		return nil
	}

	if p.opts.Declarations == nil {
		return fmt.Errorf("export declaration: %w", ErrNoRenderer)
	}
	decl, err := p.opts.Declarations.RenderDeclaration(n.Declaration)
	if err != nil {
		return fmt.Errorf("failed to render exported %s: %w", n.Declaration.NodeType(), err)
	}
	p.write("export ")
	p.write(decl)
	p.write(";")
	return nil
}

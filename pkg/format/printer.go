// Package format renders normalized import/export statements as source text.
package format

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/esmgen/pkg/core"
)

// Printer accumulates the text of one statement.
type Printer struct {
	opts   Options
	output *bytes.Buffer
}

func newPrinter(opts Options) *Printer {
	return &Printer{
		opts:   opts,
		output: &bytes.Buffer{},
	}
}

// String returns the rendered output.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) write(s string) {
	p.output.WriteString(s)
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// formatList prints count items produced by format, separated by sep.
func (p *Printer) formatList(count int, format func(i int), sep string) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
		}
	}
}

// formatName prints an export name, quoting it when it is not an identifier.
func (p *Printer) formatName(name string) {
	if core.IsIdentifierName(name) {
		p.write(name)
		return
	}
	p.write(Quote(name))
}

// formatSpecifier prints `local` or `local as bound`.
func (p *Printer) formatSpecifier(s core.Specifier) {
	p.formatName(s.Local)
	if !s.Collapsed() {
		p.write(" as ")
		p.formatName(s.Bound)
	}
}

// formatBraceList prints `{a,b as c}`. specs must be non-empty.
func (p *Printer) formatBraceList(specs []core.Specifier) {
	p.write("{")
	p.formatList(len(specs), func(i int) { p.formatSpecifier(specs[i]) }, ",")
	p.write("}")
}

// formatClause prints the specifier-list clause of an import.
func (p *Printer) formatClause(specs []core.Specifier) {
	first := specs[0]
	switch first.Kind {
	case core.SpecifierDefault:
		p.write(first.Bound)
		if len(specs) == 1 {
			return
		}
		if specs[1].Kind == core.SpecifierNamespace {
			p.write(", * as ")
			p.write(specs[1].Bound)
			return
		}
	case core.SpecifierNamespace:
		p.write("* as ")
		p.write(first.Bound)
		if len(specs) == 1 {
			return
		}
		if specs[1].Kind == core.SpecifierDefault {
			p.write(", ")
			p.write(specs[1].Bound)
			return
		}
	default:
		p.formatBraceList(specs)
		return
	}

	p.write(", ")
	p.formatBraceList(specs[1:])
}

// formatFrom prints ` from <literal>;`.
func (p *Printer) formatFrom(src *core.Source) {
	p.write(" from ")
	if src.Raw != "" {
		p.write(src.Raw)
	} else {
		p.write(Quote(src.Value))
	}
	p.write(";")
}

// Quote returns s as a JavaScript string literal using the quote character
// that needs fewer escapes. Ties favor double quotes.
// Bytes that are not valid UTF-8 are written as \xNN escapes.
func Quote(s string) string {
	quote := byte('"')
	if strings.Count(s, `"`) > strings.Count(s, "'") {
		quote = '\''
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			_, _ = fmt.Fprintf(&b, `\x%02x`, s[i])
			i++
			continue
		}
		i += size

		switch r {
		case rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

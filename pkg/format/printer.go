// Package format renders AST nodes back to SQL text.
package format

import (
	"bytes"
	"strings"

	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/spi"
)

// Printer accumulates rendered SQL. It implements spi.GeneratorOps so
// dialect renderers can drive it without importing this package.
type Printer struct {
	buf     bytes.Buffer
	dialect *dialect.Dialect
}

// NewPrinter creates a Printer for the given dialect.
func NewPrinter(d *dialect.Dialect) *Printer {
	return &Printer{dialect: d}
}

// String returns the rendered SQL.
func (p *Printer) String() string {
	return p.buf.String()
}

// Write appends raw text.
func (p *Printer) Write(s string) {
	p.buf.WriteString(s)
}

// Keyword appends a keyword in canonical uppercase.
func (p *Printer) Keyword(s string) {
	p.buf.WriteString(strings.ToUpper(s))
}

// Space appends a single space.
func (p *Printer) Space() {
	p.buf.WriteByte(' ')
}

// Ident appends an identifier, quoting it when the dialect requires.
func (p *Printer) Ident(name string) {
	p.buf.WriteString(p.dialect.QuoteIdentifierIfNeeded(name))
}

// StringLit appends a single-quoted string literal, doubling embedded
// quotes.
func (p *Printer) StringLit(v string) {
	p.buf.WriteByte('\'')
	p.buf.WriteString(strings.ReplaceAll(v, "'", "''"))
	p.buf.WriteByte('\'')
}

// TableName appends a possibly schema-qualified table name.
func (p *Printer) TableName(t *core.TableName) {
	if t.Schema != "" {
		p.Ident(t.Schema)
		p.buf.WriteByte('.')
	}
	p.Ident(t.Name)
}

// ColumnDefs appends a parenthesized column definition list.
func (p *Printer) ColumnDefs(cols []core.ColumnDef) {
	p.buf.WriteByte('(')
	for i, col := range cols {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.Ident(col.Name)
		p.buf.WriteByte(' ')
		p.buf.WriteString(col.Type)
		if len(col.TypeArgs) > 0 {
			p.buf.WriteByte('(')
			p.buf.WriteString(strings.Join(col.TypeArgs, ", "))
			p.buf.WriteByte(')')
		}
		if col.NotNull {
			p.buf.WriteString(" NOT NULL")
		}
		if col.Default != "" {
			p.buf.WriteString(" DEFAULT ")
			p.buf.WriteString(col.Default)
		}
		if col.PrimaryKey {
			p.buf.WriteString(" PRIMARY KEY")
		}
	}
	p.buf.WriteByte(')')
}

// Property renders a property node in its generic form. Renderers fall back
// to it for variants they do not special-case.
func (p *Printer) Property(prop core.Property) {
	switch v := prop.(type) {
	case *core.LocationProperty:
		p.Keyword("LOCATION")
		p.Write(" (")
		p.StringLit(v.URI)
		p.Write(")")
	case *core.FileFormatProperty:
		p.Keyword("FORMAT")
		p.Space()
		p.StringLit(v.Name)
		if len(v.Options) > 0 {
			p.Write(" (")
			for i, opt := range v.Options {
				if i > 0 {
					p.Write(", ")
				}
				p.Write(opt.Name)
				p.Write(" = ")
				p.StringLit(opt.Value)
			}
			p.Write(")")
		}
	case *core.GenericProperty:
		// A property whose value repeats its name is a bare flag.
		if v.Value == v.Name || v.Value == "" {
			p.Keyword(v.Name)
		} else {
			p.Keyword(v.Name)
			p.Write(" = ")
			p.StringLit(v.Value)
		}
	case *core.ExternalProperty:
		// Marker; carries no clause text of its own.
	}
}

var _ spi.GeneratorOps = (*Printer)(nil)

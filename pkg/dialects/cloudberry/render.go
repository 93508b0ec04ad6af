package cloudberry

import (
	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/spi"
)

// renderCreate renders external-table CREATE statements. Non-external
// statements are left to the baseline renderer. Clauses are emitted in
// canonical order regardless of the order they were parsed in:
// LOCATION, ON ALL, FORMAT, ENCODING, then anything unrecognized.
func renderCreate(g spi.GeneratorOps, stmt *core.CreateStmt) bool {
	if stmt.Kind != "TABLE" || !stmt.IsExternal() {
		return false
	}

	g.Keyword("CREATE EXTERNAL TABLE")
	if stmt.Replace {
		g.Space()
		g.Keyword("OR REPLACE")
	}
	if stmt.IfNotExists {
		g.Space()
		g.Keyword("IF NOT EXISTS")
	}
	g.Space()
	g.TableName(stmt.Table)

	if len(stmt.Columns) > 0 {
		g.Space()
		g.ColumnDefs(stmt.Columns)
	}

	var (
		location *core.LocationProperty
		onAll    bool
		format   *core.FileFormatProperty
		encoding *core.GenericProperty
		rest     []core.Property
	)
	for _, prop := range stmt.Properties {
		switch p := prop.(type) {
		case *core.LocationProperty:
			location = p
		case *core.FileFormatProperty:
			format = p
		case *core.GenericProperty:
			switch p.Name {
			case core.PropOnAll:
				onAll = true
			case core.PropEncoding:
				encoding = p
			default:
				rest = append(rest, p)
			}
		case *core.ExternalProperty:
			// Marker only; EXTERNAL is already part of the header.
		}
	}

	if location != nil {
		g.Space()
		g.Keyword("LOCATION")
		g.Write(" (")
		g.StringLit(location.URI)
		g.Write(")")
	}
	if onAll {
		g.Space()
		g.Keyword("ON ALL")
	}
	if format != nil {
		g.Space()
		g.Keyword("FORMAT")
		g.Space()
		g.StringLit(format.Name)
		if len(format.Options) > 0 {
			g.Write(" (")
			for i, opt := range format.Options {
				if i > 0 {
					g.Write(", ")
				}
				g.Write(opt.Name)
				g.Write(" = ")
				g.StringLit(opt.Value)
			}
			g.Write(")")
		}
	}
	if encoding != nil {
		g.Space()
		g.Keyword("ENCODING")
		g.Space()
		g.StringLit(encoding.Value)
	}
	for _, prop := range rest {
		g.Space()
		g.Property(prop)
	}

	return true
}

package format

import (
	"fmt"

	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/dialect"
)

// Statement renders a statement as SQL in the given dialect. Dialect
// renderers get first refusal; statements they decline fall through to the
// baseline rendering.
func Statement(stmt core.Stmt, d *dialect.Dialect) (string, error) {
	switch s := stmt.(type) {
	case *core.CreateStmt:
		p := NewPrinter(d)
		if r := d.CreateRenderer(); r != nil && r(p, s) {
			return p.String(), nil
		}
		renderCreate(p, s)
		return p.String(), nil
	default:
		return "", fmt.Errorf("cannot render statement of type %T", stmt)
	}
}

// renderCreate is the baseline CREATE rendering. Properties the target
// dialect has no syntax for are dropped, so an external-table statement
// rendered here degrades to a plain CREATE TABLE.
func renderCreate(p *Printer, stmt *core.CreateStmt) {
	p.Keyword("CREATE")
	if stmt.Replace {
		p.Space()
		p.Keyword("OR REPLACE")
	}
	if stmt.Temporary {
		p.Space()
		p.Keyword("TEMPORARY")
	}
	p.Space()
	p.Keyword(stmt.Kind)
	if stmt.IfNotExists {
		p.Space()
		p.Keyword("IF NOT EXISTS")
	}
	p.Space()
	p.TableName(stmt.Table)

	if len(stmt.Columns) > 0 {
		p.Space()
		p.ColumnDefs(stmt.Columns)
	}
}

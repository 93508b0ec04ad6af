// Package transpile is the high-level entry point: parse SQL in one
// dialect, render it in another.
package transpile

import (
	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/format"
	"github.com/sqlbridge/sqlbridge/pkg/parser"
)

// Parse parses a single SQL statement in the given dialect.
func Parse(sql string, d *dialect.Dialect) (core.Stmt, error) {
	return parser.ParseStatement(sql, d)
}

// Generate renders a statement as SQL in the given dialect.
func Generate(stmt core.Stmt, d *dialect.Dialect) (string, error) {
	return format.Statement(stmt, d)
}

// Transpile parses sql in the source dialect and renders it in the target
// dialect. Passing the same dialect for both normalizes the statement to
// its canonical form.
func Transpile(sql string, from, to *dialect.Dialect) (string, error) {
	stmt, err := Parse(sql, from)
	if err != nil {
		return "", err
	}
	return Generate(stmt, to)
}

package transpile

import (
	"strings"

	"github.com/sqlbridge/sqlbridge/pkg/dialect"
)

// SplitStatements splits SQL text into individual statements on semicolons,
// ignoring semicolons inside string literals, quoted identifiers, and
// comments. Empty statements are dropped; the semicolons themselves are not
// retained.
func SplitStatements(sql string) []string {
	var (
		stmts []string
		start int
	)

	flush := func(end int) {
		if s := strings.TrimSpace(sql[start:end]); s != "" {
			stmts = append(stmts, s)
		}
	}

	for i := 0; i < len(sql); i++ {
		switch sql[i] {
		case ';':
			flush(i)
			start = i + 1
		case '\'':
			i = skipQuoted(sql, i, '\'')
		case '"':
			i = skipQuoted(sql, i, '"')
		case '-':
			if i+1 < len(sql) && sql[i+1] == '-' {
				for i < len(sql) && sql[i] != '\n' {
					i++
				}
			}
		case '/':
			if i+1 < len(sql) && sql[i+1] == '*' {
				i += 2
				for i+1 < len(sql) && !(sql[i] == '*' && sql[i+1] == '/') {
					i++
				}
				i++
			}
		}
	}
	flush(len(sql))
	return stmts
}

// skipQuoted advances past a quoted region starting at sql[i], honoring
// doubled-quote escapes. Returns the index of the closing quote.
func skipQuoted(sql string, i int, quote byte) int {
	for i++; i < len(sql); i++ {
		if sql[i] == quote {
			if i+1 < len(sql) && sql[i+1] == quote {
				i++
				continue
			}
			return i
		}
	}
	return i
}

// TranspileAll parses each statement in sql under the source dialect and
// renders it in the target dialect, preserving statement order.
func TranspileAll(sql string, from, to *dialect.Dialect) ([]string, error) {
	var out []string
	for _, stmt := range SplitStatements(sql) {
		rendered, err := Transpile(stmt, from, to)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}

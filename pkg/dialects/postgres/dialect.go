// Package postgres provides the PostgreSQL dialect.
package postgres

import (
	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

// Postgres is the PostgreSQL dialect. Identifiers are double-quoted and
// fold to lowercase when unquoted.
var Postgres = dialect.NewDialect("postgres").
	Identifiers(`"`, `"`, `""`, core.NormLowercase).
	DefaultSchema("public").
	Statement(token.CREATE, ParseCreate).
	WithReservedWords(
		"all", "and", "any", "array", "as", "asc", "asymmetric",
		"both", "case", "cast", "check", "collate", "column",
		"constraint", "create", "current_date", "current_time",
		"current_timestamp", "current_user", "default", "deferrable",
		"desc", "distinct", "do", "else", "end", "except", "false",
		"for", "foreign", "from", "grant", "group", "having", "in",
		"initially", "intersect", "into", "leading", "limit",
		"localtime", "localtimestamp", "not", "null", "offset", "on",
		"only", "or", "order", "placing", "primary", "references",
		"returning", "select", "session_user", "some", "symmetric",
		"table", "then", "to", "trailing", "true", "union", "unique",
		"user", "using", "variadic", "when", "where", "window", "with",
	).
	WithDataTypes(
		"bigint", "bigserial", "boolean", "bytea", "char", "date",
		"decimal", "double", "float", "int", "integer", "interval",
		"json", "jsonb", "numeric", "real", "serial", "smallint",
		"text", "time", "timestamp", "timestamptz", "uuid", "varchar",
	).
	Build()

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/dialects/postgres"
	"github.com/sqlbridge/sqlbridge/pkg/parser"
)

func parseCreate(t *testing.T, sql string) *core.CreateStmt {
	t.Helper()
	stmt, err := parser.ParseStatement(sql, postgres.Postgres)
	require.NoError(t, err)
	create, ok := stmt.(*core.CreateStmt)
	require.True(t, ok, "expected *core.CreateStmt, got %T", stmt)
	return create
}

func TestParseCreateTable(t *testing.T) {
	stmt := parseCreate(t, "CREATE TABLE users (id int, name varchar(255))")

	assert.Equal(t, "TABLE", stmt.Kind)
	assert.False(t, stmt.Temporary)
	assert.False(t, stmt.IfNotExists)
	require.NotNil(t, stmt.Table)
	assert.Equal(t, "users", stmt.Table.Name)
	assert.Empty(t, stmt.Table.Schema)

	require.Len(t, stmt.Columns, 2)
	assert.Equal(t, "id", stmt.Columns[0].Name)
	assert.Equal(t, "int", stmt.Columns[0].Type)
	assert.Equal(t, "name", stmt.Columns[1].Name)
	assert.Equal(t, "varchar", stmt.Columns[1].Type)
	assert.Equal(t, []string{"255"}, stmt.Columns[1].TypeArgs)
}

func TestParseCreateTableQualified(t *testing.T) {
	stmt := parseCreate(t, "CREATE TABLE analytics.events (id bigint)")

	assert.Equal(t, "analytics", stmt.Table.Schema)
	assert.Equal(t, "events", stmt.Table.Name)
}

func TestParseCreateTableModifiers(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		check func(t *testing.T, stmt *core.CreateStmt)
	}{
		{
			name: "temporary",
			sql:  "CREATE TEMPORARY TABLE scratch (v text)",
			check: func(t *testing.T, stmt *core.CreateStmt) {
				assert.True(t, stmt.Temporary)
			},
		},
		{
			name: "temp",
			sql:  "CREATE TEMP TABLE scratch (v text)",
			check: func(t *testing.T, stmt *core.CreateStmt) {
				assert.True(t, stmt.Temporary)
			},
		},
		{
			name: "or replace",
			sql:  "CREATE OR REPLACE TABLE t (v text)",
			check: func(t *testing.T, stmt *core.CreateStmt) {
				assert.True(t, stmt.Replace)
			},
		},
		{
			name: "if not exists",
			sql:  "CREATE TABLE IF NOT EXISTS t (v text)",
			check: func(t *testing.T, stmt *core.CreateStmt) {
				assert.True(t, stmt.IfNotExists)
			},
		},
		{
			name: "no column list",
			sql:  "CREATE TABLE t",
			check: func(t *testing.T, stmt *core.CreateStmt) {
				assert.Empty(t, stmt.Columns)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, parseCreate(t, tt.sql))
		})
	}
}

func TestParseColumnConstraints(t *testing.T) {
	stmt := parseCreate(t, "CREATE TABLE t (id int PRIMARY KEY, name text NOT NULL, age int DEFAULT 0, label text DEFAULT 'n/a')")

	require.Len(t, stmt.Columns, 4)
	assert.True(t, stmt.Columns[0].PrimaryKey)
	assert.True(t, stmt.Columns[1].NotNull)
	assert.Equal(t, "0", stmt.Columns[2].Default)
	assert.Equal(t, "'n/a'", stmt.Columns[3].Default)
}

func TestParseColumnTypeArgs(t *testing.T) {
	stmt := parseCreate(t, "CREATE TABLE t (amount numeric(10, 2))")

	require.Len(t, stmt.Columns, 1)
	assert.Equal(t, []string{"10", "2"}, stmt.Columns[0].TypeArgs)
}

func TestParseTrailingSemicolon(t *testing.T) {
	stmt := parseCreate(t, "CREATE TABLE t (a int);")
	assert.Equal(t, "t", stmt.Table.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"empty input", ""},
		{"unknown statement", "SELECT 1"},
		{"missing table keyword", "CREATE users (id int)"},
		{"unterminated column list", "CREATE TABLE t (id int"},
		{"trailing tokens", "CREATE TABLE t (a int) garbage"},
		{"incomplete if not exists", "CREATE TABLE IF NOT t (a int)"},
		{"unterminated default string", "CREATE TABLE t (a text DEFAULT 'x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseStatement(tt.sql, postgres.Postgres)
			require.Error(t, err)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parser.ParseStatement("CREATE TABLE t (a int) garbage", postgres.Postgres)
	require.Error(t, err)

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos.Line)
	assert.Contains(t, perr.Error(), "garbage")
}

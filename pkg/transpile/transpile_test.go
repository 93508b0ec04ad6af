package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/pkg/dialects/cloudberry"
	"github.com/sqlbridge/sqlbridge/pkg/dialects/postgres"
	"github.com/sqlbridge/sqlbridge/pkg/transpile"
)

func TestTranspile(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		from string
		to   string
		want string
	}{
		{
			name: "normalize casing",
			sql:  "create table t (a int)",
			from: "postgres",
			to:   "postgres",
			want: "CREATE TABLE t (a int)",
		},
		{
			name: "external table downgrade",
			sql:  "CREATE EXTERNAL TABLE t (a int) LOCATION ('pxf://x') FORMAT 'csv'",
			from: "cloudberry",
			to:   "postgres",
			want: "CREATE TABLE t (a int)",
		},
		{
			name: "external table canonicalize",
			sql:  "CREATE EXTERNAL TABLE t (a int) FORMAT 'csv' LOCATION ('pxf://x')",
			from: "cloudberry",
			to:   "cloudberry",
			want: "CREATE EXTERNAL TABLE t (a int) LOCATION ('pxf://x') FORMAT 'csv'",
		},
		{
			name: "plain create into cloudberry",
			sql:  "CREATE TABLE t (a int)",
			from: "postgres",
			to:   "cloudberry",
			want: "CREATE TABLE t (a int)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := postgres.Postgres
			if tt.from == "cloudberry" {
				from = cloudberry.Cloudberry
			}
			to := postgres.Postgres
			if tt.to == "cloudberry" {
				to = cloudberry.Cloudberry
			}

			out, err := transpile.Transpile(tt.sql, from, to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTranspileParseError(t *testing.T) {
	_, err := transpile.Transpile("CREATE TABLE", postgres.Postgres, postgres.Postgres)
	require.Error(t, err)
}

func TestParseGenerateSplit(t *testing.T) {
	stmt, err := transpile.Parse("CREATE TABLE t (a int)", postgres.Postgres)
	require.NoError(t, err)

	out, err := transpile.Generate(stmt, postgres.Postgres)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE t (a int)", out)
}

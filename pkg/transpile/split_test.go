package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/pkg/dialects/cloudberry"
	"github.com/sqlbridge/sqlbridge/pkg/dialects/postgres"
	"github.com/sqlbridge/sqlbridge/pkg/transpile"
)

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two statements",
			input: "CREATE TABLE a (x int); CREATE TABLE b (y int);",
			want:  []string{"CREATE TABLE a (x int)", "CREATE TABLE b (y int)"},
		},
		{
			name:  "no trailing semicolon",
			input: "CREATE TABLE a (x int)",
			want:  []string{"CREATE TABLE a (x int)"},
		},
		{
			name:  "semicolon inside string",
			input: "CREATE EXTERNAL TABLE t LOCATION ('pxf://x;y'); CREATE TABLE b (y int)",
			want:  []string{"CREATE EXTERNAL TABLE t LOCATION ('pxf://x;y')", "CREATE TABLE b (y int)"},
		},
		{
			name:  "semicolon inside comment",
			input: "CREATE TABLE a (x int) -- trailing; comment\n; CREATE TABLE b (y int)",
			want:  []string{"CREATE TABLE a (x int) -- trailing; comment", "CREATE TABLE b (y int)"},
		},
		{
			name:  "empty statements dropped",
			input: ";;  ;CREATE TABLE a (x int);;",
			want:  []string{"CREATE TABLE a (x int)"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transpile.SplitStatements(tt.input))
		})
	}
}

func TestTranspileAll(t *testing.T) {
	input := "CREATE TABLE a (x int); CREATE EXTERNAL TABLE b (y int) LOCATION ('pxf://x')"

	out, err := transpile.TranspileAll(input, cloudberry.Cloudberry, postgres.Postgres)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CREATE TABLE a (x int)",
		"CREATE TABLE b (y int)",
	}, out)
}

func TestTranspileAllStopsOnError(t *testing.T) {
	_, err := transpile.TranspileAll("CREATE TABLE a (x int); CREATE TABLE", postgres.Postgres, postgres.Postgres)
	require.Error(t, err)
}

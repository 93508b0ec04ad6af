package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

func TestLexerBasicTokens(t *testing.T) {
	l := NewLexer("CREATE TABLE users (id int);")

	expected := []struct {
		typ token.TokenType
		lit string
	}{
		{token.CREATE, "CREATE"},
		{token.TABLE, "TABLE"},
		{token.IDENT, "users"},
		{token.LPAREN, "("},
		{token.IDENT, "id"},
		{token.IDENT, "int"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	for _, exp := range expected {
		tok := l.NextToken()
		assert.Equal(t, exp.typ, tok.Type, "literal %q", tok.Literal)
		assert.Equal(t, exp.lit, tok.Literal)
	}
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	l := NewLexer("create Table tEmP")

	assert.Equal(t, token.CREATE, l.NextToken().Type)
	assert.Equal(t, token.TABLE, l.NextToken().Type)
	assert.Equal(t, token.TEMPORARY, l.NextToken().Type)
}

func TestLexerStringLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "'hello'", "hello"},
		{"empty", "''", ""},
		{"doubled quote escape", "'it''s'", "it's"},
		{"uri", "'pxf://bucket/path'", "pxf://bucket/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			require.Equal(t, token.STRING, tok.Type)
			assert.Equal(t, tt.want, tok.Literal)
		})
	}
}

func TestLexerQuotedIdentifier(t *testing.T) {
	tok := NewLexer(`"Mixed Case"`).NextToken()
	require.Equal(t, token.IDENT, tok.Type)
	assert.Equal(t, "Mixed Case", tok.Literal)
}

func TestLexerNumbers(t *testing.T) {
	l := NewLexer("42 3.14")

	tok := l.NextToken()
	require.Equal(t, token.NUMBER, tok.Type)
	assert.Equal(t, "42", tok.Literal)

	tok = l.NextToken()
	require.Equal(t, token.NUMBER, tok.Type)
	assert.Equal(t, "3.14", tok.Literal)
}

func TestLexerSkipsComments(t *testing.T) {
	input := `-- leading comment
CREATE /* block
comment */ TABLE t`

	l := NewLexer(input)
	assert.Equal(t, token.CREATE, l.NextToken().Type)
	assert.Equal(t, token.TABLE, l.NextToken().Type)
	assert.Equal(t, token.IDENT, l.NextToken().Type)
	assert.Equal(t, token.EOF, l.NextToken().Type)
}

func TestLexerDialectClassifier(t *testing.T) {
	d := dialect.NewDialect("test").
		Keyword("external", token.TEMPORARY).
		Keyword("location", token.PARTITION).
		Build()

	// Without the dialect both words are plain identifiers.
	plain := NewLexer("external location")
	assert.Equal(t, token.IDENT, plain.NextToken().Type)
	assert.Equal(t, token.IDENT, plain.NextToken().Type)

	// With the dialect they are reclassified but keep their literal.
	l := NewLexerWithDialect("EXTERNAL Location", d)

	tok := l.NextToken()
	assert.Equal(t, token.TEMPORARY, tok.Type)
	assert.Equal(t, "EXTERNAL", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, token.PARTITION, tok.Type)
	assert.Equal(t, "Location", tok.Literal)
}

func TestLexerClassifierDoesNotShadowBuiltins(t *testing.T) {
	d := dialect.NewDialect("test").
		Keyword("external", token.TEMPORARY).
		Build()

	// TEMP still arrives as a TEMPORARY token with its own literal.
	l := NewLexerWithDialect("TEMP external", d)

	tok := l.NextToken()
	assert.Equal(t, token.TEMPORARY, tok.Type)
	assert.Equal(t, "TEMP", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, token.TEMPORARY, tok.Type)
	assert.Equal(t, "external", tok.Literal)
}

func TestLexerPositions(t *testing.T) {
	l := NewLexer("CREATE\nTABLE")

	tok := l.NextToken()
	assert.Equal(t, 1, tok.Pos.Line)
	assert.Equal(t, 1, tok.Pos.Column)

	tok = l.NextToken()
	assert.Equal(t, 2, tok.Pos.Line)
	assert.Equal(t, 1, tok.Pos.Column)
}

func TestLexerIllegalCharacter(t *testing.T) {
	tok := NewLexer("@").NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
}

func TestTokenize(t *testing.T) {
	d := dialect.NewDialect("test").
		Keyword("external", token.TEMPORARY).
		Build()

	tokens := Tokenize("CREATE EXTERNAL TABLE t", d)
	require.Len(t, tokens, 5)
	assert.Equal(t, token.CREATE, tokens[0].Type)
	assert.Equal(t, token.TEMPORARY, tokens[1].Type)
	assert.Equal(t, token.TABLE, tokens[2].Type)
	assert.Equal(t, token.IDENT, tokens[3].Type)
	assert.Equal(t, token.EOF, tokens[4].Type)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer("'oops")

	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)

	err := l.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")
}

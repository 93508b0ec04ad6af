// Package token defines the token types for SQL parsing.
//
// Core tokens are defined as constants (IDs 0-999) for switch performance.
// Dialect-specific tokens are registered dynamically via Register().
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // SQL token names are intentionally ALL_CAPS
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Punctuation
	EQ        // =
	DOT       // .
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;

	// Keywords (alphabetical)
	ALL
	CHARSET
	CREATE
	DEFAULT
	DROP
	EXISTS
	FORMAT
	IF
	KEY
	NOT
	NULL
	ON
	OR
	PARTITION
	PRIMARY
	REPLACE
	TABLE
	TEMPORARY
	UNIQUE
	VIEW

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	// Check dynamic tokens first
	if name, ok := getDynamicName(t); ok {
		return name
	}
	// Then check builtin tokens
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps builtin token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	EQ:        "=",
	DOT:       ".",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",

	ALL:       "ALL",
	CHARSET:   "CHARSET",
	CREATE:    "CREATE",
	DEFAULT:   "DEFAULT",
	DROP:      "DROP",
	EXISTS:    "EXISTS",
	FORMAT:    "FORMAT",
	IF:        "IF",
	KEY:       "KEY",
	NOT:       "NOT",
	NULL:      "NULL",
	ON:        "ON",
	OR:        "OR",
	PARTITION: "PARTITION",
	PRIMARY:   "PRIMARY",
	REPLACE:   "REPLACE",
	TABLE:     "TABLE",
	TEMPORARY: "TEMPORARY",
	UNIQUE:    "UNIQUE",
	VIEW:      "VIEW",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{
	"all":       ALL,
	"charset":   CHARSET,
	"create":    CREATE,
	"default":   DEFAULT,
	"drop":      DROP,
	"exists":    EXISTS,
	"format":    FORMAT,
	"if":        IF,
	"key":       KEY,
	"not":       NOT,
	"null":      NULL,
	"on":        ON,
	"or":        OR,
	"partition": PARTITION,
	"primary":   PRIMARY,
	"replace":   REPLACE,
	"table":     TABLE,
	"temp":      TEMPORARY,
	"temporary": TEMPORARY,
	"unique":    UNIQUE,
	"view":      VIEW,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a builtin keyword, the keyword token type is
// returned. Otherwise, IDENT is returned. Dialect keyword tables are
// consulted by the lexer before this fallback applies.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin keyword.
func IsKeyword(t TokenType) bool {
	return t >= ALL && t <= VIEW
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Package spi provides Service Provider Interface types for dialect
// statement handlers and renderers to interact with the parser and
// generator without circular dependencies.
package spi

import (
	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

// ParserOps exposes parser operations to dialect statement handlers.
// This interface allows dialect-specific code to interact with the parser
// without creating circular dependencies.
type ParserOps interface {
	// Token access
	Token() token.Token
	Peek() token.Token

	// Consumption
	Match(t token.TokenType) bool
	Expect(t token.TokenType) error
	NextToken()
	Check(t token.TokenType) bool

	// Sub-parsers
	ParseIdentifier() (string, error)
	ParseString() (string, error)
	ParseTableName() (*core.TableName, error)
	ParseColumnDefs() ([]core.ColumnDef, error)

	// Error handling
	SyntaxError(msg string) error
	Position() token.Position
}

// StatementHandler parses a dialect-specific statement form.
// Called AFTER the introducing keyword (e.g. CREATE) has been consumed.
// A handler that does not recognize the specialized form delegates to its
// fallback handler directly and returns that result unchanged.
type StatementHandler func(p ParserOps) (core.Stmt, error)

// GeneratorOps exposes generator operations to dialect renderers.
type GeneratorOps interface {
	Write(s string)
	Keyword(s string)
	Space()
	Ident(name string)
	StringLit(v string)
	TableName(t *core.TableName)
	ColumnDefs(cols []core.ColumnDef)

	// Property renders a property node via the generic name/value form.
	// Renderers use it as the fallback for variants they do not
	// special-case.
	Property(p core.Property)
}

// CreateRenderer renders a CreateStmt in a dialect-specific textual form.
// It returns true when it handled the node; false defers to the baseline
// rendering.
type CreateRenderer func(g GeneratorOps, stmt *core.CreateStmt) bool

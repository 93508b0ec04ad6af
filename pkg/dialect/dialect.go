// Package dialect provides SQL dialect configuration and composition.
//
// A dialect bundles a keyword table (the token classifier), statement
// handlers, and generator overrides, plus an explicit Fallback reference to
// the dialect it extends. Every capability not overridden is resolved
// through the fallback chain, so a dialect inherits 100% of its baseline's
// behavior without method-resolution tricks. Concrete dialects live in
// pkg/dialects/*/ packages as package-level vars; there is no global
// mutable registry, callers pass the dialect they want.
package dialect

import (
	"strings"

	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/spi"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

// Dialect represents a SQL dialect: a triple of token classifier, statement
// handlers, and generator overrides, plus whatever it inherits unchanged
// from its fallback. Dialect values are immutable after Build; parse and
// generate calls share no mutable state through them.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// DefaultSchema is the default schema name ("public" for Postgres).
	DefaultSchema string

	// Fallback is the baseline dialect consulted for every capability this
	// dialect does not define. Nil for base dialects.
	Fallback *Dialect

	keywords       map[string]token.TokenType        // classifier: keyword -> existing category
	statements     map[token.TokenType]spi.StatementHandler // statement overrides by introducing token
	createRenderer spi.CreateRenderer
	reservedWords  map[string]struct{}
	dataTypes      []string
}

// LookupKeyword returns the token type for a dialect keyword, consulting
// the fallback chain. Returns IDENT and false when no dialect in the chain
// classifies the keyword.
func (d *Dialect) LookupKeyword(name string) (token.TokenType, bool) {
	lower := strings.ToLower(name)
	for cur := d; cur != nil; cur = cur.Fallback {
		if t, ok := cur.keywords[lower]; ok {
			return t, true
		}
	}
	return token.IDENT, false
}

// StatementHandler returns the handler for a statement-introducing token,
// consulting the fallback chain. Returns nil when no dialect in the chain
// overrides the statement.
func (d *Dialect) StatementHandler(t token.TokenType) spi.StatementHandler {
	for cur := d; cur != nil; cur = cur.Fallback {
		if h, ok := cur.statements[t]; ok {
			return h
		}
	}
	return nil
}

// CreateRenderer returns the CREATE generator override, consulting the
// fallback chain. Returns nil when no dialect in the chain overrides
// generation.
func (d *Dialect) CreateRenderer() spi.CreateRenderer {
	for cur := d; cur != nil; cur = cur.Fallback {
		if cur.createRenderer != nil {
			return cur.createRenderer
		}
	}
	return nil
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// IsReservedWord returns true if the word needs quoting when used as an
// identifier, consulting the fallback chain.
func (d *Dialect) IsReservedWord(word string) bool {
	normalized := d.NormalizeName(word)
	for cur := d; cur != nil; cur = cur.Fallback {
		if _, ok := cur.reservedWords[normalized]; ok {
			return true
		}
	}
	return false
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier when it is a reserved word,
// contains characters outside the plain identifier set, or would change
// under the dialect's case normalization.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.IsReservedWord(name) || !isPlainIdentifier(name) || name != d.NormalizeName(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

func isPlainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// DataTypes returns the dialect's data types, falling back when unset.
func (d *Dialect) DataTypes() []string {
	for cur := d; cur != nil; cur = cur.Fallback {
		if len(cur.dataTypes) > 0 {
			return cur.dataTypes
		}
	}
	return nil
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:         `"`,
				QuoteEnd:      `"`,
				Escape:        `""`,
				Normalization: core.NormLowercase,
			},
			keywords:      make(map[string]token.TokenType),
			statements:    make(map[token.TokenType]spi.StatementHandler),
			reservedWords: make(map[string]struct{}),
		},
	}
}

// Extends sets the fallback dialect. Every capability not defined on this
// dialect resolves through the fallback chain; identifier config and
// default schema are copied as the starting point.
func (b *Builder) Extends(base *Dialect) *Builder {
	b.dialect.Fallback = base
	b.dialect.Identifiers = base.Identifiers
	b.dialect.DefaultSchema = base.DefaultSchema
	return b
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.DefaultSchema = schema
	return b
}

// Keyword classifies a keyword onto an existing token category for this
// dialect's lexer. This is the token-classifier mechanism: new keywords
// reuse existing categories (e.g. EXTERNAL onto the TEMPORARY category) so
// the statement parser recognizes them via category tests. The mapping is
// pure and total; unmapped keywords fall through to builtin classification.
func (b *Builder) Keyword(name string, t token.TokenType) *Builder {
	b.dialect.keywords[strings.ToLower(name)] = t
	return b
}

// Statement registers a handler for a statement-introducing token. The
// handler is invoked with the token stream positioned just after that
// token.
func (b *Builder) Statement(t token.TokenType, handler spi.StatementHandler) *Builder {
	b.dialect.statements[t] = handler
	return b
}

// RenderCreate registers a generator override for CREATE statements.
func (b *Builder) RenderCreate(r spi.CreateRenderer) *Builder {
	b.dialect.createRenderer = r
	return b
}

// WithReservedWords registers words that need quoting as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[b.dialect.NormalizeName(w)] = struct{}{}
	}
	return b
}

// WithDataTypes registers supported data types.
func (b *Builder) WithDataTypes(types ...string) *Builder {
	b.dialect.dataTypes = append(b.dialect.dataTypes, types...)
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}

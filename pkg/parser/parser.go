package parser

import (
	"fmt"
	"strings"

	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/spi"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

// Parser parses SQL statements. Statement-level parsing is delegated to the
// dialect's registered handlers; the parser itself only knows the shared
// primitives (identifiers, strings, table names, column lists).
type Parser struct {
	lexer   *Lexer
	dialect *dialect.Dialect

	tok  token.Token // current token
	peek token.Token // next token
}

// New creates a Parser over the given input for the given dialect.
func New(input string, d *dialect.Dialect) *Parser {
	p := &Parser{
		lexer:   NewLexerWithDialect(input, d),
		dialect: d,
	}
	// Prime the two-token window.
	p.tok = p.lexer.NextToken()
	p.peek = p.lexer.NextToken()
	return p
}

// ParseStatement parses a single SQL statement using the given dialect.
func ParseStatement(input string, d *dialect.Dialect) (core.Stmt, error) {
	p := New(input, d)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	// Optional trailing semicolon, then nothing else.
	p.Match(token.SEMICOLON)
	if p.tok.Type != token.EOF {
		return nil, p.SyntaxError(fmt.Sprintf("unexpected trailing token %q", p.tok.Literal))
	}
	return stmt, nil
}

func (p *Parser) parseStatement() (core.Stmt, error) {
	if p.tok.Type == token.EOF {
		return nil, p.SyntaxError("empty statement")
	}

	handler := p.dialect.StatementHandler(p.tok.Type)
	if handler == nil {
		return nil, p.SyntaxError(fmt.Sprintf("unexpected token %q at start of statement", p.tok.Literal))
	}
	p.NextToken()
	return handler(p)
}

// Token returns the current token.
func (p *Parser) Token() token.Token {
	return p.tok
}

// Peek returns the next token without consuming anything.
func (p *Parser) Peek() token.Token {
	return p.peek
}

// NextToken advances to the next token.
func (p *Parser) NextToken() {
	p.tok = p.peek
	p.peek = p.lexer.NextToken()
}

// Check reports whether the current token has the given type.
func (p *Parser) Check(t token.TokenType) bool {
	return p.tok.Type == t
}

// Match consumes the current token if it has the given type.
func (p *Parser) Match(t token.TokenType) bool {
	if p.tok.Type != t {
		return false
	}
	p.NextToken()
	return true
}

// Expect consumes the current token if it has the given type, or returns a
// ParseError naming what was found instead.
func (p *Parser) Expect(t token.TokenType) error {
	if p.tok.Type != t {
		return p.SyntaxError(fmt.Sprintf(ErrUnexpectedToken, describe(p.tok), t.String()))
	}
	p.NextToken()
	return nil
}

// ParseIdentifier consumes an identifier and returns its literal. Keyword
// tokens are accepted as identifiers; SQL allows most keywords in name
// position.
func (p *Parser) ParseIdentifier() (string, error) {
	if p.tok.Type != token.IDENT && !token.IsKeyword(p.tok.Type) && !token.IsDynamic(p.tok.Type) {
		return "", p.SyntaxError(fmt.Sprintf(ErrUnexpectedToken, describe(p.tok), "identifier"))
	}
	lit := p.tok.Literal
	p.NextToken()
	return lit, nil
}

// ParseString consumes a string literal and returns its value.
func (p *Parser) ParseString() (string, error) {
	if p.tok.Type != token.STRING {
		return "", p.SyntaxError(fmt.Sprintf(ErrUnexpectedToken, describe(p.tok), "string literal"))
	}
	lit := p.tok.Literal
	p.NextToken()
	return lit, nil
}

// ParseTableName parses a possibly schema-qualified table name.
func (p *Parser) ParseTableName() (*core.TableName, error) {
	first, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}

	name := &core.TableName{Name: first}
	if p.Match(token.DOT) {
		second, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		name.Schema = first
		name.Name = second
	}
	return name, nil
}

// ParseColumnDefs parses a parenthesized column definition list. The opening
// paren must be the current token.
func (p *Parser) ParseColumnDefs() ([]core.ColumnDef, error) {
	if err := p.Expect(token.LPAREN); err != nil {
		return nil, err
	}

	var cols []core.ColumnDef
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)

		if !p.Match(token.COMMA) {
			break
		}
	}

	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	return cols, nil
}

func (p *Parser) parseColumnDef() (core.ColumnDef, error) {
	var col core.ColumnDef

	name, err := p.ParseIdentifier()
	if err != nil {
		return col, err
	}
	col.Name = name

	typ, err := p.ParseIdentifier()
	if err != nil {
		return col, err
	}
	col.Type = typ

	// Optional type arguments: varchar(255), numeric(10, 2)
	if p.Match(token.LPAREN) {
		for {
			if p.tok.Type != token.NUMBER && p.tok.Type != token.IDENT {
				return col, p.SyntaxError(fmt.Sprintf(ErrUnexpectedToken, describe(p.tok), "type argument"))
			}
			col.TypeArgs = append(col.TypeArgs, p.tok.Literal)
			p.NextToken()
			if !p.Match(token.COMMA) {
				break
			}
		}
		if err := p.Expect(token.RPAREN); err != nil {
			return col, err
		}
	}

	// Column constraints, in any order.
	for {
		switch {
		case p.Check(token.NOT):
			p.NextToken()
			if err := p.Expect(token.NULL); err != nil {
				return col, err
			}
			col.NotNull = true
		case p.Check(token.DEFAULT):
			p.NextToken()
			switch p.tok.Type {
			case token.STRING:
				col.Default = "'" + strings.ReplaceAll(p.tok.Literal, "'", "''") + "'"
				p.NextToken()
			case token.NUMBER, token.IDENT, token.NULL:
				col.Default = p.tok.Literal
				p.NextToken()
			default:
				return col, p.SyntaxError(fmt.Sprintf(ErrUnexpectedToken, describe(p.tok), "default value"))
			}
		case p.Check(token.PRIMARY):
			p.NextToken()
			if err := p.Expect(token.KEY); err != nil {
				return col, err
			}
			col.PrimaryKey = true
		default:
			return col, nil
		}
	}
}

// SyntaxError builds a ParseError at the current token's position. A
// pending lexical error takes precedence, since an ILLEGAL token is the
// symptom rather than the cause.
func (p *Parser) SyntaxError(msg string) error {
	if err := p.lexer.Err(); err != nil {
		return err
	}
	return &ParseError{
		Pos:     p.tok.Pos,
		Message: msg,
	}
}

// Position returns the current token's position.
func (p *Parser) Position() token.Position {
	return p.tok.Pos
}

// describe renders a token for error messages.
func describe(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of input"
	case token.STRING:
		return fmt.Sprintf("'%s'", t.Literal)
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}

var _ spi.ParserOps = (*Parser)(nil)

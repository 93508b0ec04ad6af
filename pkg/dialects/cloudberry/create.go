package cloudberry

import (
	"fmt"
	"strings"

	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/dialects/postgres"
	"github.com/sqlbridge/sqlbridge/pkg/spi"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

// parseCreate dispatches between the external-table form and the baseline
// CREATE grammar. The decision is made on lookahead alone: nothing is
// consumed before delegating, so the fallback sees the statement exactly
// as written.
func parseCreate(p spi.ParserOps) (core.Stmt, error) {
	if isExternalKeyword(p.Token()) && p.Peek().Type == token.TABLE {
		return parseCreateExternal(p)
	}
	return postgres.ParseCreate(p)
}

// parseCreateExternal parses:
//
//	CREATE EXTERNAL TABLE [IF NOT EXISTS] [schema.]name [(columns)]
//	    [LOCATION ('uri')] [ON ALL]
//	    [FORMAT 'name' [(opt [=] 'value', ...)]]
//	    [ENCODING 'value']
//
// Clauses may appear in any order after the column list; each may appear
// at most once.
func parseCreateExternal(p spi.ParserOps) (core.Stmt, error) {
	stmt := &core.CreateStmt{
		NodeInfo: core.NodeInfo{Pos: p.Position()},
		Kind:     "TABLE",
	}

	p.NextToken() // EXTERNAL
	if err := p.Expect(token.TABLE); err != nil {
		return nil, err
	}

	if p.Check(token.IF) {
		p.NextToken()
		if err := p.Expect(token.NOT); err != nil {
			return nil, err
		}
		if err := p.Expect(token.EXISTS); err != nil {
			return nil, err
		}
		stmt.IfNotExists = true
	}

	table, err := p.ParseTableName()
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	if p.Check(token.LPAREN) {
		cols, err := p.ParseColumnDefs()
		if err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}

	seen := make(map[string]bool)
	mark := func(clause string) error {
		if seen[clause] {
			return p.SyntaxError(fmt.Sprintf("duplicate %s clause", clause))
		}
		seen[clause] = true
		return nil
	}

clauses:
	for !p.Check(token.EOF) && !p.Check(token.SEMICOLON) {
		switch {
		case p.Check(token.PARTITION) && literalIs(p.Token(), "location"):
			if err := mark("LOCATION"); err != nil {
				return nil, err
			}
			loc, err := parseLocation(p)
			if err != nil {
				return nil, err
			}
			stmt.Properties = append(stmt.Properties, loc)

		case p.Check(token.ON) && p.Peek().Type == token.ALL:
			if err := mark("ON ALL"); err != nil {
				return nil, err
			}
			p.NextToken()
			p.NextToken()
			stmt.Properties = append(stmt.Properties, &core.GenericProperty{
				Name:  core.PropOnAll,
				Value: core.PropOnAll,
			})

		case p.Check(token.FORMAT):
			if err := mark("FORMAT"); err != nil {
				return nil, err
			}
			format, err := parseFormat(p)
			if err != nil {
				return nil, err
			}
			stmt.Properties = append(stmt.Properties, format)

		case p.Check(token.CHARSET) && literalIs(p.Token(), "encoding"):
			if err := mark("ENCODING"); err != nil {
				return nil, err
			}
			p.NextToken()
			v, err := p.ParseString()
			if err != nil {
				return nil, err
			}
			stmt.Properties = append(stmt.Properties, &core.GenericProperty{
				Name:  core.PropEncoding,
				Value: v,
			})

		default:
			// Not a clause; leave it for the statement terminator.
			break clauses
		}
	}

	stmt.Properties = append(stmt.Properties, &core.ExternalProperty{})
	return stmt, nil
}

// parseLocation parses LOCATION ('uri'). The LOCATION keyword is the
// current token.
func parseLocation(p spi.ParserOps) (core.Property, error) {
	p.NextToken()
	if err := p.Expect(token.LPAREN); err != nil {
		return nil, err
	}
	uri, err := p.ParseString()
	if err != nil {
		return nil, err
	}
	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &core.LocationProperty{URI: uri}, nil
}

// parseFormat parses FORMAT 'name' [(opt [=] 'value', ...)]. The FORMAT
// keyword is the current token. Option keys may be identifiers or keywords;
// the '=' and the commas between options are both optional.
func parseFormat(p spi.ParserOps) (core.Property, error) {
	p.NextToken()
	name, err := p.ParseString()
	if err != nil {
		return nil, err
	}

	format := &core.FileFormatProperty{Name: name}
	if p.Match(token.LPAREN) {
		for !p.Check(token.RPAREN) {
			key, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			p.Match(token.EQ)
			value, err := p.ParseString()
			if err != nil {
				return nil, err
			}
			format.Options = append(format.Options, core.GenericProperty{
				Name:  key,
				Value: value,
			})
			p.Match(token.COMMA)
		}
		if err := p.Expect(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return format, nil
}

// isExternalKeyword reports whether t is the reclassified EXTERNAL keyword
// as opposed to a genuine TEMPORARY or TEMP.
func isExternalKeyword(t token.Token) bool {
	return t.Type == token.TEMPORARY && literalIs(t, "external")
}

func literalIs(t token.Token, s string) bool {
	return strings.EqualFold(t.Literal, s)
}

package postgres

import (
	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/spi"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

// ParseCreate parses a CREATE TABLE statement:
//
//	CREATE [OR REPLACE] [TEMPORARY|TEMP] TABLE [IF NOT EXISTS]
//	    [schema.]name [(column definitions)]
//
// The CREATE keyword has already been consumed when the handler runs. It is
// exported so extending dialects can delegate to it when their own CREATE
// forms do not apply.
func ParseCreate(p spi.ParserOps) (core.Stmt, error) {
	stmt := &core.CreateStmt{
		NodeInfo: core.NodeInfo{Pos: p.Position()},
		Kind:     "TABLE",
	}

	if p.Check(token.OR) {
		p.NextToken()
		if err := p.Expect(token.REPLACE); err != nil {
			return nil, err
		}
		stmt.Replace = true
	}

	if p.Match(token.TEMPORARY) {
		stmt.Temporary = true
	}

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

	return stmt, nil
}

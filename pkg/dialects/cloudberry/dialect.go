// Package cloudberry provides the Cloudberry dialect, a PostgreSQL
// extension with support for external tables.
package cloudberry

import (
	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/dialects/postgres"
	"github.com/sqlbridge/sqlbridge/pkg/token"
)

// Cloudberry is the Cloudberry dialect. It extends Postgres and reclassifies
// a handful of identifiers onto existing token categories so the lexer
// surfaces them as keywords:
//
//	EXTERNAL -> TEMPORARY   (create-modifier position)
//	LOCATION -> PARTITION   (table-clause position)
//	ENCODING -> CHARSET     (table-clause position)
//
// FORMAT is already a builtin keyword. The reclassified tokens keep their
// source literal, so handlers distinguish e.g. EXTERNAL from TEMPORARY by
// comparing the literal case-insensitively.
var Cloudberry = dialect.NewDialect("cloudberry").
	Extends(postgres.Postgres).
	Keyword("external", token.TEMPORARY).
	Keyword("location", token.PARTITION).
	Keyword("encoding", token.CHARSET).
	Statement(token.CREATE, parseCreate).
	RenderCreate(renderCreate).
	Build()

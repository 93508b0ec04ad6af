// Package core defines the shared language of the sqlbridge system.
//
// This package contains:
//   - AST node types for statements (CreateStmt, ColumnDef, TableName)
//   - The Property sum type carrying parsed clause data
//   - Identifier configuration shared by dialects
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core

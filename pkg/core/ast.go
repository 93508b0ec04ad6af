package core

import "github.com/sqlbridge/sqlbridge/pkg/token"

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	stmtNode()
}

// NodeInfo provides common fields for AST nodes that track positions.
type NodeInfo struct {
	Pos token.Position
}

// GetPos returns the node's source position.
func (n *NodeInfo) GetPos() token.Position {
	return n.Pos
}

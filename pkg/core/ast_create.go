package core

// CreateStmt represents a creation statement (CREATE TABLE and friends).
//
// All fields are set during a single parse call. The node is not mutated
// afterward; the generator only reads it.
type CreateStmt struct {
	NodeInfo
	Kind        string // object kind, e.g. "TABLE"
	Replace     bool   // CREATE OR REPLACE
	Temporary   bool   // CREATE TEMPORARY TABLE
	IfNotExists bool   // CREATE TABLE IF NOT EXISTS
	Table       *TableName
	Columns     []ColumnDef

	// Properties holds parsed clause data in parse order. Generation must
	// not depend on this order.
	Properties []Property
}

func (*CreateStmt) stmtNode() {}

// HasProperty reports whether the properties collection contains a node
// matched by the predicate.
func (s *CreateStmt) HasProperty(match func(Property) bool) bool {
	for _, p := range s.Properties {
		if match(p) {
			return true
		}
	}
	return false
}

// IsExternal reports whether the properties collection carries the
// ExternalProperty marker.
func (s *CreateStmt) IsExternal() bool {
	return s.HasProperty(func(p Property) bool {
		_, ok := p.(*ExternalProperty)
		return ok
	})
}

// TableName represents a possibly schema-qualified table name.
type TableName struct {
	Schema string
	Name   string
}

// String returns the dotted form of the table name.
func (t *TableName) String() string {
	if t.Schema != "" {
		return t.Schema + "." + t.Name
	}
	return t.Name
}

// ColumnDef represents one (name, type) pair in a column definition list.
// Created during parsing, read-only afterward.
type ColumnDef struct {
	Name       string
	Type       string
	TypeArgs   []string // e.g. the "10" in varchar(10)
	NotNull    bool
	Default    string // raw default literal text, empty when absent
	PrimaryKey bool
}

package core

// Property is the closed set of typed nodes carrying parsed clause data on
// a CreateStmt. The variants below are the only implementations; generators
// switch over them exhaustively, falling back to the generic name/value
// rendering for anything they do not special-case.
type Property interface {
	propertyNode()
}

// LocationProperty wraps the URI of a LOCATION ( '<uri>' ) clause.
type LocationProperty struct {
	URI string
}

func (*LocationProperty) propertyNode() {}

// FileFormatProperty wraps a FORMAT '<name>' clause with its optional
// parenthesized option list. Options preserve parse order.
type FileFormatProperty struct {
	Name    string
	Options []GenericProperty
}

func (*FileFormatProperty) propertyNode() {}

// GenericProperty is a name/value pair used for simple flags such as
// ENCODING, the ON ALL placement flag, and format sub-options.
type GenericProperty struct {
	Name  string
	Value string
}

func (*GenericProperty) propertyNode() {}

// ExternalProperty is a zero-payload marker flagging a CreateStmt as the
// external-table variant. Its presence selects the dedicated rendering
// branch at generation time; it carries no data.
type ExternalProperty struct{}

func (*ExternalProperty) propertyNode() {}

// Well-known GenericProperty names.
const (
	// PropOnAll names the placement flag. It renders as the bare keyword
	// sequence ON ALL even though the node carries a literal value.
	PropOnAll = "ON ALL"
	// PropEncoding names the ENCODING clause property.
	PropEncoding = "ENCODING"
)

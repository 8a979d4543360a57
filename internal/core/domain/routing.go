package domain

// RouteKind identifies which retrieval path answers a query.
type RouteKind int

const (
	// RouteSemantic routes the query through embedding retrieval plus
	// answer generation.
	RouteSemantic RouteKind = iota

	// RouteStructured routes the query to the relational locale lookup.
	RouteStructured
)

// Attribute tags the specific locale attribute a structured query asked for.
type Attribute int

const (
	// AttributeNone means the query named a unit but no particular attribute.
	AttributeNone Attribute = iota

	// AttributeMonto asks for the rent amount.
	AttributeMonto

	// AttributeSuperficie asks for the surface area.
	AttributeSuperficie

	// AttributeEstado asks for the occupancy status.
	AttributeEstado
)

// String returns the attribute name for logging.
func (a Attribute) String() string {
	switch a {
	case AttributeMonto:
		return "monto"
	case AttributeSuperficie:
		return "superficie"
	case AttributeEstado:
		return "estado"
	default:
		return "none"
	}
}

// RoutingDecision is the classifier's verdict for one query. It is derived
// per query and never persisted.
type RoutingDecision struct {
	// Kind selects the retrieval path.
	Kind RouteKind

	// Numero is the captured unit number. Only meaningful for RouteStructured.
	Numero int

	// Attribute is the requested attribute. Only meaningful for RouteStructured.
	Attribute Attribute

	// Query is the raw query text, carried through for the semantic path.
	Query string
}

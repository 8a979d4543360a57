package domain

// Locale is a structured record for a single commercial unit of the centre,
// mirrored from a document's front matter into the relational store.
// The query core treats these rows as read-only; only the sync step writes.
type Locale struct {
	// Numero is the unit number, the primary key.
	Numero int

	// NombreLocal is the display name of the unit.
	NombreLocal string

	// Piso is the floor, kept as text ("1", "Subterráneo").
	Piso string

	// MetrosCuadrados is the surface area in square metres.
	MetrosCuadrados int

	// MontoArriendoUF is the monthly rent in UF.
	MontoArriendoUF float64

	// Estado is the occupancy status ("Disponible", "Arrendado", ...).
	Estado string

	// Arrendatario is the current tenant, empty when vacant.
	Arrendatario string

	// Contrato is the contract reference, empty when vacant.
	Contrato string

	// Amenity flags.
	TieneBano   bool
	TieneBodega bool
	MedidorLuz  bool

	// SourceFile is the path of the originating document, unique per row.
	SourceFile string
}

// LocaleFilter narrows a locale lookup. Nil fields match everything.
type LocaleFilter struct {
	// Numero filters by unit number when non-nil.
	Numero *int

	// Estado filters by status equality when non-nil.
	Estado *string
}

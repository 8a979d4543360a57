package driven

import (
	"context"

	"github.com/portalcentro/centrorag/internal/core/domain"
)

// LocaleStore provides access to the relational table of locale records.
// The query core only reads; Replace is reserved for the sync step.
type LocaleStore interface {
	// Lookup returns locales matching the filter, in unit-number order.
	// Both filter fields absent matches all rows. A lookup that matches
	// nothing returns an empty slice, not an error.
	Lookup(ctx context.Context, filter domain.LocaleFilter) ([]domain.Locale, error)

	// Replace inserts or replaces a locale row keyed by its unit number.
	Replace(ctx context.Context, locale domain.Locale) error

	// Close releases the underlying connection.
	Close() error
}

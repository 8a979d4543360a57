package driven

import (
	"context"

	"github.com/portalcentro/centrorag/internal/core/domain"
)

// DocumentSource lists and reads the memory tree of markdown documents.
// Traversal policy (extension filter, template exclusion) lives behind
// this interface, not in the core.
type DocumentSource interface {
	// ListDocuments returns the paths of all indexable documents under root.
	ListDocuments(ctx context.Context, root string) ([]string, error)

	// ReadDocument reads one document by path.
	ReadDocument(ctx context.Context, path string) (domain.Document, error)
}

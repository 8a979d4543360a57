package driven

import "context"

// VectorStore provides similarity search over embedded chunks.
// The indexer owns the write path (Upsert); the orchestrator owns the read
// path (Count, Query).
type VectorStore interface {
	// Upsert writes vectors with their chunk text and source metadata in a
	// single bulk operation. All slices must have equal length. Ids that
	// already exist are replaced, so re-indexing is idempotent.
	Upsert(ctx context.Context, ids []string, vectors [][]float32, texts []string, sources []string) error

	// Count returns the number of entries in the collection.
	Count(ctx context.Context) (int64, error)

	// Query returns the topK nearest chunks to the given vector, in
	// store-reported order (ascending distance).
	Query(ctx context.Context, vector []float32, topK int) ([]VectorHit, error)

	// Close releases resources.
	Close() error
}

// VectorHit is one similarity search result.
type VectorHit struct {
	// Text is the stored chunk text.
	Text string

	// Source is the originating document path.
	Source string

	// Distance is the store-reported distance (lower is closer).
	Distance float32
}

package driving

import "context"

// IndexService populates the vector store from the document tree.
type IndexService interface {
	// Index reads every document under root, chunks it, embeds each chunk,
	// and bulk-upserts the result into the vector store. It returns the
	// number of chunks written. A failure on one document is logged and
	// skipped; it never aborts the batch.
	Index(ctx context.Context, root string) (int, error)
}

package driving

import "context"

// SyncService mirrors locale front matter into the relational store.
type SyncService interface {
	// Sync walks the locale documents under root and inserts-or-replaces a
	// row for every document whose front matter describes a commercial
	// unit. It returns the number of rows written. Per-file failures are
	// logged and skipped.
	Sync(ctx context.Context, root string) (int, error)
}

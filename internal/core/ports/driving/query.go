package driving

import "context"

// QueryService answers natural-language questions about the centre.
//
// Its external contract is "always returns text": classification misses,
// lookup misses, an empty index, and backend failures all surface as
// user-visible message strings, never as errors crossing this boundary.
// The error return is reserved for context cancellation.
type QueryService interface {
	// Ask routes the query to the structured lookup or the semantic
	// retrieval path and returns the composed answer.
	Ask(ctx context.Context, query string) (string, error)
}

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyIndex indicates the vector collection has zero entries.
	// Semantic retrieval refuses to run against an empty index.
	ErrEmptyIndex = errors.New("vector index is empty")

	// ErrNoRelevantContext indicates the similarity search returned nothing.
	ErrNoRelevantContext = errors.New("no relevant context found")

	// ErrLocaleNotFound indicates a recognised unit number has no row
	// in the relational store.
	ErrLocaleNotFound = errors.New("locale not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service failed or is
	// not configured. Semantic retrieval is impossible without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrGenerationUnavailable indicates the generation model failed or is
	// not configured.
	ErrGenerationUnavailable = errors.New("generation service unavailable")
)

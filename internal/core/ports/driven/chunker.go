package driven

import "github.com/portalcentro/centrorag/internal/core/domain"

// Chunker splits cleaned document text into bounded, overlapping chunks.
type Chunker interface {
	// Chunk splits text into chunks tagged with the source path.
	Chunk(text, source string) []domain.Chunk
}

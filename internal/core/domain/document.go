package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// Document represents a source document read from the memory tree.
// It is immutable once read: the indexer reads it, chunks it, and discards it.
type Document struct {
	// Path is the file path identifier, unique within the tree.
	Path string

	// Content is the raw text content before preprocessing.
	Content string
}

// Chunk is a bounded segment of a document's cleaned text, the unit of
// semantic indexing. Consecutive chunks from the same document share a
// trailing overlap so context survives chunk boundaries.
type Chunk struct {
	// ID is the vector store identifier. It is derived from the source path
	// and position (see ChunkID), so re-indexing the same tree upserts the
	// same ids instead of accumulating near-duplicates.
	ID string

	// Text is the chunk content. Always non-empty after trimming.
	Text string

	// Source is the path of the originating document.
	Source string

	// Position is the ordinal position within the document.
	Position int
}

// ChunkID derives a stable chunk identifier from the source path and the
// chunk's position within it.
func ChunkID(source string, position int) string {
	h := sha1.Sum([]byte(source))
	return hex.EncodeToString(h[:8]) + "-" + strconv.Itoa(position)
}

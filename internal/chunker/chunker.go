// Package chunker splits cleaned document text into bounded, overlapping
// chunks suitable for embedding.
package chunker

import (
	"strings"

	"github.com/portalcentro/centrorag/internal/core/domain"
	"github.com/portalcentro/centrorag/internal/core/ports/driven"
)

// Ensure Chunker implements the interface.
var _ driven.Chunker = (*Chunker)(nil)

// DefaultChunkSize is the default character budget per chunk.
const DefaultChunkSize = 500

// DefaultOverlap is the default number of trailing characters shared with
// the next chunk.
const DefaultOverlap = 50

// Chunker accumulates lines into a buffer and emits the buffer as a chunk
// whenever the next line would reach the character budget. The next buffer
// is seeded with the tail of the previous one so context survives the cut.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave room for new content in each chunk.
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Chunk splits text into chunks tagged with the source path.
//
// The scan is line by line: lines accumulate into a buffer until appending
// the next line would reach the budget, at which point the buffer is emitted
// (trimmed) and the next buffer starts with the last overlap characters of
// the old one followed by the triggering line. A single line longer than the
// budget is appended whole, producing an oversized chunk; lines are never
// split mid-line.
func (c *Chunker) Chunk(text, source string) []domain.Chunk {
	var chunks []domain.Chunk
	var buf strings.Builder
	position := 0

	emit := func() {
		trimmed := strings.TrimSpace(buf.String())
		if trimmed == "" {
			return
		}
		chunks = append(chunks, domain.Chunk{
			ID:       domain.ChunkID(source, position),
			Text:     trimmed,
			Source:   source,
			Position: position,
		})
		position++
	}

	for _, line := range strings.Split(text, "\n") {
		if runeLen(buf.String())+runeLen(line) < c.chunkSize {
			buf.WriteString(line)
			buf.WriteString("\n")
			continue
		}

		tail := tailRunes(buf.String(), c.overlap)
		emit()
		buf.Reset()
		buf.WriteString(tail)
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	emit()
	return chunks
}

func runeLen(s string) int {
	return len([]rune(s))
}

// tailRunes returns the last n characters of s, rune-aligned.
func tailRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

package driven

// Normaliser cleans raw document content before chunking and exposes the
// structured front matter for synchronisation.
type Normaliser interface {
	// Clean strips the leading front-matter block and fenced code blocks.
	// Both removals are best-effort: content without either region passes
	// through unchanged.
	Clean(content string) string

	// FrontMatter decodes the leading front-matter block into a map.
	// Content without front matter yields an empty map and no error.
	FrontMatter(content string) (map[string]any, error)
}

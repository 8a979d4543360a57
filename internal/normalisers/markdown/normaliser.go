// Package markdown cleans the memory tree's markdown documents for indexing
// and decodes their YAML front matter for synchronisation.
package markdown

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/portalcentro/centrorag/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

var (
	// A single leading front-matter block delimited by --- lines.
	frontMatterRe = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n?`)

	// Fenced code blocks anywhere in the document.
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// Normaliser handles markdown documents.
type Normaliser struct{}

// New creates a new markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Clean strips the leading front-matter block and all fenced code blocks.
// Both removals are best-effort: a document without either region passes
// through unchanged, and an unterminated fence is left in place rather than
// swallowing the rest of the document.
func (n *Normaliser) Clean(content string) string {
	content = frontMatterRe.ReplaceAllString(content, "")
	content = codeBlockRe.ReplaceAllString(content, "")
	return content
}

// FrontMatter decodes the leading front-matter block into a map.
// A document without front matter yields an empty map and no error.
func (n *Normaliser) FrontMatter(content string) (map[string]any, error) {
	m := frontMatterRe.FindStringSubmatch(content)
	if m == nil {
		return map[string]any{}, nil
	}

	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(m[1]), &fields); err != nil {
		return nil, fmt.Errorf("decode front matter: %w", err)
	}
	return fields, nil
}

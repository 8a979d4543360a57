// Package filesystem reads the memory tree of markdown documents from disk.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/portalcentro/centrorag/internal/core/domain"
	"github.com/portalcentro/centrorag/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// TemplatesDir is the directory segment excluded from traversal.
// Template documents describe the shape of a record, not a real unit.
const TemplatesDir = "99-Templates"

// Source walks a directory tree for markdown documents.
type Source struct{}

// New creates a filesystem document source.
func New() *Source {
	return &Source{}
}

// ListDocuments returns the paths of all .md files under root, excluding
// anything inside a templates directory. Paths are returned in walk order
// (lexical within each directory).
func (s *Source) ListDocuments(ctx context.Context, root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == TemplatesDir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return paths, nil
}

// ReadDocument reads one document by path.
func (s *Source) ReadDocument(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return domain.Document{
		Path:    path,
		Content: string(data),
	}, nil
}

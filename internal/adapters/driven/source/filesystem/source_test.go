package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestListDocuments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "01-Centro", "overview.md"), "# Centro")
	writeFile(t, filepath.Join(root, "02-Locales", "local-03.md"), "# Local 3")
	writeFile(t, filepath.Join(root, "02-Locales", "notas.txt"), "not markdown")
	writeFile(t, filepath.Join(root, "99-Templates", "local.md"), "# Template")

	paths, err := New().ListDocuments(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "overview.md")
	assert.Contains(t, paths[1], "local-03.md")
}

func TestListDocuments_MissingRoot(t *testing.T) {
	_, err := New().ListDocuments(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReadDocument(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, "hello")

	doc, err := New().ReadDocument(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "hello", doc.Content)
}

func TestReadDocument_Missing(t *testing.T) {
	_, err := New().ReadDocument(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

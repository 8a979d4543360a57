package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `---
tipo: Local Comercial
numero: 3
nombre_local: Café Central
estado: Disponible
---
# Local 3

El local 3 se encuentra en el primer piso del centro comercial.

` + "```" + `
codigo interno que no debe indexarse
` + "```" + `

Cuenta con baño propio y bodega.
`

func TestClean_StripsFrontMatterAndCodeBlocks(t *testing.T) {
	n := New()

	got := n.Clean(sampleDoc)

	assert.NotContains(t, got, "tipo: Local Comercial")
	assert.NotContains(t, got, "codigo interno")
	assert.Contains(t, got, "primer piso")
	assert.Contains(t, got, "bodega")
}

func TestClean_NoFrontMatter(t *testing.T) {
	n := New()

	content := "plain text\nwith two lines\n"
	assert.Equal(t, content, n.Clean(content))
}

func TestClean_FrontMatterOnlyAtStart(t *testing.T) {
	n := New()

	// A --- block in the middle of the document is a thematic break plus
	// content, not front matter.
	content := "intro\n---\nkey: value\n---\noutro\n"
	got := n.Clean(content)

	assert.Contains(t, got, "key: value")
}

func TestClean_UnterminatedFence(t *testing.T) {
	n := New()

	content := "before\n```\nnever closed\nafter\n"
	got := n.Clean(content)

	assert.Contains(t, got, "after")
}

func TestFrontMatter_Decodes(t *testing.T) {
	n := New()

	fields, err := n.FrontMatter(sampleDoc)
	require.NoError(t, err)

	assert.Equal(t, "Local Comercial", fields["tipo"])
	assert.Equal(t, 3, fields["numero"])
	assert.Equal(t, "Café Central", fields["nombre_local"])
}

func TestFrontMatter_Absent(t *testing.T) {
	n := New()

	fields, err := n.FrontMatter("no front matter here\n")
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestFrontMatter_Invalid(t *testing.T) {
	n := New()

	_, err := n.FrontMatter("---\n\t: {invalid\n---\nbody\n")
	assert.Error(t, err)
}

func TestClean_LongProseSurvives(t *testing.T) {
	n := New()

	prose := strings.Repeat("El centro comercial abre todos los días. ", 30)
	content := "---\ntipo: Nota\n---\n" + prose

	got := n.Clean(content)
	assert.Contains(t, got, "abre todos los días")
	assert.NotContains(t, got, "tipo: Nota")
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalcentro/centrorag/internal/core/domain"
	"github.com/portalcentro/centrorag/internal/core/ports/driven"
)

type mockLocaleStore struct {
	locales []domain.Locale
	err     error
	calls   int
}

func (m *mockLocaleStore) Lookup(_ context.Context, filter domain.LocaleFilter) ([]domain.Locale, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Locale
	for _, l := range m.locales {
		if filter.Numero != nil && l.Numero != *filter.Numero {
			continue
		}
		if filter.Estado != nil && l.Estado != *filter.Estado {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLocaleStore) Replace(context.Context, domain.Locale) error { return nil }
func (m *mockLocaleStore) Close() error                                 { return nil }

type mockVectorStore struct {
	count    int64
	countErr error
	hits     []driven.VectorHit
	queryErr error
}

func (m *mockVectorStore) Upsert(context.Context, []string, [][]float32, []string, []string) error {
	return nil
}

func (m *mockVectorStore) Count(context.Context) (int64, error) {
	return m.count, m.countErr
}

func (m *mockVectorStore) Query(context.Context, []float32, int) ([]driven.VectorHit, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.hits, nil
}

func (m *mockVectorStore) Close() error { return nil }

type mockEmbedder struct {
	t      *testing.T
	vector []float32
	err    error
	banned bool
	calls  int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.banned {
		m.t.Fatal("Embed must not be called on this path")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.vector, nil
}

func (m *mockEmbedder) Dimensions() int   { return len(m.vector) }
func (m *mockEmbedder) ModelName() string { return "mock-embedder" }
func (m *mockEmbedder) Close() error      { return nil }

type mockLLM struct {
	answer string
	err    error
	prompt string
}

func (m *mockLLM) Generate(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }
func (m *mockLLM) Close() error      { return nil }

func cafeCentral() domain.Locale {
	return domain.Locale{
		Numero:          3,
		NombreLocal:     "Café Central",
		Piso:            "1",
		MetrosCuadrados: 45,
		MontoArriendoUF: 12.5,
		Estado:          "Arrendado",
		Arrendatario:    "María Pérez",
		SourceFile:      "locales/local-03.md",
	}
}

func TestAskStructuredAnswerIsDeterministic(t *testing.T) {
	locales := &mockLocaleStore{locales: []domain.Locale{cafeCentral()}}
	embedder := &mockEmbedder{t: t, banned: true}
	svc := NewQueryService(locales, &mockVectorStore{}, embedder, &mockLLM{}, 0)

	first, err := svc.Ask(context.Background(), "información del local 3")
	require.NoError(t, err)
	second, err := svc.Ask(context.Background(), "información del local 3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Información del Local 3:")
	assert.Contains(t, first, "Nombre: Café Central")
	assert.Contains(t, first, "Piso: 1")
	assert.Contains(t, first, "Superficie: 45 m²")
	assert.Contains(t, first, "Monto de Arriendo: 12.5 UF")
	assert.Contains(t, first, "Estado: Arrendado")
}

func TestAskStructuredMissDoesNotFallBack(t *testing.T) {
	locales := &mockLocaleStore{}
	embedder := &mockEmbedder{t: t, banned: true}
	llm := &mockLLM{answer: "should never be used"}
	svc := NewQueryService(locales, &mockVectorStore{count: 10}, embedder, llm, 0)

	answer, err := svc.Ask(context.Background(), "estado del local 9999")
	require.NoError(t, err)

	assert.Equal(t, "No se encontró información para el Local 9999 en la base de datos.", answer)
	assert.Equal(t, 1, locales.calls)
	assert.Empty(t, llm.prompt)
}

func TestAskStructuredLookupErrorSurfacesAsText(t *testing.T) {
	locales := &mockLocaleStore{err: errors.New("database is locked")}
	svc := NewQueryService(locales, &mockVectorStore{}, &mockEmbedder{t: t, banned: true}, &mockLLM{}, 0)

	answer, err := svc.Ask(context.Background(), "monto del local 5")
	require.NoError(t, err)
	assert.Contains(t, answer, "ERROR al consultar la base de datos")
	assert.Contains(t, answer, "database is locked")
}

func TestAskEmptyIndexSkipsEmbedding(t *testing.T) {
	embedder := &mockEmbedder{t: t, banned: true}
	svc := NewQueryService(&mockLocaleStore{}, &mockVectorStore{count: 0}, embedder, &mockLLM{}, 0)

	answer, err := svc.Ask(context.Background(), "¿qué servicios ofrece el centro?")
	require.NoError(t, err)

	assert.Contains(t, answer, "no contiene vectores indexados")
	assert.Zero(t, embedder.calls)
}

func TestAskSemanticComposesAnswerFromContext(t *testing.T) {
	store := &mockVectorStore{
		count: 42,
		hits: []driven.VectorHit{
			{Text: "El centro abre de lunes a sábado.", Source: "general/horarios.md", Distance: 0.1},
			{Text: "El estacionamiento es gratuito.", Source: "general/servicios.md", Distance: 0.2},
		},
	}
	embedder := &mockEmbedder{t: t, vector: []float32{0.1, 0.2}}
	llm := &mockLLM{answer: "  El centro abre de lunes a sábado.\n"}
	svc := NewQueryService(&mockLocaleStore{}, store, embedder, llm, 0)

	answer, err := svc.Ask(context.Background(), "¿cuándo abre el centro?")
	require.NoError(t, err)

	assert.Equal(t, "El centro abre de lunes a sábado.", answer)
	assert.Equal(t, 1, embedder.calls)

	require.NotEmpty(t, llm.prompt)
	assert.Contains(t, llm.prompt, "CONTEXTO:")
	assert.Contains(t, llm.prompt, "PREGUNTA:")
	assert.Contains(t, llm.prompt, "El centro abre de lunes a sábado.\nEl estacionamiento es gratuito.")
	assert.Contains(t, llm.prompt, "¿cuándo abre el centro?")
	assert.Less(t, strings.Index(llm.prompt, "CONTEXTO:"), strings.Index(llm.prompt, "PREGUNTA:"))
}

func TestAskSemanticNoRelevantContext(t *testing.T) {
	store := &mockVectorStore{count: 42, hits: nil}
	embedder := &mockEmbedder{t: t, vector: []float32{0.1}}
	llm := &mockLLM{answer: "should never be used"}
	svc := NewQueryService(&mockLocaleStore{}, store, embedder, llm, 0)

	answer, err := svc.Ask(context.Background(), "¿hay cine en el centro?")
	require.NoError(t, err)

	assert.Contains(t, answer, "No se encontró información relevante")
	assert.Empty(t, llm.prompt)
}

func TestAskSemanticEmbeddingErrorSurfacesAsText(t *testing.T) {
	embedder := &mockEmbedder{t: t, err: errors.New("connection refused")}
	svc := NewQueryService(&mockLocaleStore{}, &mockVectorStore{count: 5}, embedder, &mockLLM{}, 0)

	answer, err := svc.Ask(context.Background(), "¿qué servicios ofrece?")
	require.NoError(t, err)
	assert.Contains(t, answer, "ERROR al recuperar contexto")
	assert.Contains(t, answer, "connection refused")
}

func TestAskSemanticGenerationErrorSurfacesAsText(t *testing.T) {
	store := &mockVectorStore{count: 5, hits: []driven.VectorHit{{Text: "algo", Source: "a.md"}}}
	embedder := &mockEmbedder{t: t, vector: []float32{0.3}}
	llm := &mockLLM{err: errors.New("model not loaded")}
	svc := NewQueryService(&mockLocaleStore{}, store, embedder, llm, 0)

	answer, err := svc.Ask(context.Background(), "¿qué servicios ofrece?")
	require.NoError(t, err)
	assert.Contains(t, answer, "ERROR al generar la respuesta")
	assert.Contains(t, answer, "model not loaded")
}

func TestAskCancelledContextReturnsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	locales := &mockLocaleStore{err: context.Canceled}
	svc := NewQueryService(locales, &mockVectorStore{}, &mockEmbedder{t: t, banned: true}, &mockLLM{}, 0)

	_, err := svc.Ask(ctx, "información del local 3")
	assert.ErrorIs(t, err, context.Canceled)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/portalcentro/centrorag/internal/core/domain"
	"github.com/portalcentro/centrorag/internal/core/ports/driven"
	"github.com/portalcentro/centrorag/internal/core/ports/driving"
	"github.com/portalcentro/centrorag/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// DefaultTopK is the number of chunks retrieved per semantic query.
const DefaultTopK = 3

// groundingPrompt embeds the retrieved context and directs the model to
// answer only from it. The context block goes first, the question second.
const groundingPrompt = `Basándote EXCLUSIVAMENTE en el siguiente CONTEXTO de PortalCentro Mulchén, responde a la pregunta.
Si la respuesta no se puede inferir del contexto, indica que la información no está disponible.

CONTEXTO:
%s

PREGUNTA:
%s

RESPUESTA:
`

// QueryService is the top-level orchestrator: it classifies each question
// and routes it to the structured lookup or to semantic retrieval plus
// answer generation.
//
// Its contract is "always returns text": lookup misses, an empty index,
// and backend failures surface as user-visible message strings. The error
// return is reserved for context cancellation.
type QueryService struct {
	classifier *Classifier
	locales    driven.LocaleStore
	store      driven.VectorStore
	embedder   driven.EmbeddingService
	llm        driven.LLMService
	topK       int
}

// NewQueryService creates the query orchestrator. topK values below one
// fall back to DefaultTopK.
func NewQueryService(
	locales driven.LocaleStore,
	store driven.VectorStore,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	topK int,
) *QueryService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &QueryService{
		classifier: NewClassifier(),
		locales:    locales,
		store:      store,
		embedder:   embedder,
		llm:        llm,
		topK:       topK,
	}
}

// Ask answers a natural-language question about the centre.
func (s *QueryService) Ask(ctx context.Context, query string) (string, error) {
	logger.Section("Query")
	logger.Debug("Query: %q", query)

	decision := s.classifier.Classify(query)

	if decision.Kind == domain.RouteStructured {
		logger.Info("Routing to structured lookup: local %d (attribute %s)",
			decision.Numero, decision.Attribute)
		return s.answerStructured(ctx, decision)
	}

	logger.Info("Routing to semantic retrieval")
	return s.answerSemantic(ctx, decision.Query)
}

// answerStructured resolves a recognised locale from the relational store.
// A recognised structured intent is never redirected to semantic retrieval,
// even when the lookup comes back empty: the miss message is terminal.
func (s *QueryService) answerStructured(ctx context.Context, decision domain.RoutingDecision) (string, error) {
	matches, err := s.locales.Lookup(ctx, domain.LocaleFilter{Numero: &decision.Numero})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Error("locale lookup failed: %v", err)
		return fmt.Sprintf("ERROR al consultar la base de datos: %v", err), nil
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No se encontró información para el Local %d en la base de datos.", decision.Numero), nil
	}

	return formatLocale(matches[0]), nil
}

// answerSemantic retrieves grounding context and asks the generation model
// to compose the answer from it.
func (s *QueryService) answerSemantic(ctx context.Context, query string) (string, error) {
	hits, err := s.retrieve(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return semanticFailureMessage(err), nil
	}

	contextTexts := make([]string, len(hits))
	for i, hit := range hits {
		contextTexts[i] = hit.Text
		logger.Debug("Context %d from %s (distance %.4f)", i+1, hit.Source, hit.Distance)
	}

	prompt := fmt.Sprintf(groundingPrompt, strings.Join(contextTexts, "\n"), query)

	answer, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Error("generation failed: %v", err)
		return fmt.Sprintf("ERROR al generar la respuesta: %v", err), nil
	}

	return strings.TrimSpace(answer), nil
}

// retrieve embeds the query and fetches the topK nearest chunks. The empty
// index is checked before any embedding call is made.
func (s *QueryService) retrieve(ctx context.Context, query string) ([]driven.VectorHit, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("vector store count: %w", err)
	}
	if count == 0 {
		return nil, domain.ErrEmptyIndex
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	hits, err := s.store.Query(ctx, vector, s.topK)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	if len(hits) == 0 {
		return nil, domain.ErrNoRelevantContext
	}

	return hits, nil
}

// semanticFailureMessage maps retrieval errors to user-visible text.
func semanticFailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyIndex):
		return "ERROR: La base de conocimiento vectorial de PortalCentro no contiene vectores indexados. Ejecute primero el comando de indexación."
	case errors.Is(err, domain.ErrNoRelevantContext):
		return "ERROR: No se encontró información relevante en la base de conocimiento de PortalCentro."
	default:
		logger.Error("semantic retrieval failed: %v", err)
		return fmt.Sprintf("ERROR al recuperar contexto: %v", err)
	}
}

// formatLocale renders the deterministic structured answer. No model call
// is involved; two runs over the same row produce identical text.
func formatLocale(l domain.Locale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Información del Local %d:\n", l.Numero)
	fmt.Fprintf(&b, "  - Nombre: %s\n", l.NombreLocal)
	fmt.Fprintf(&b, "  - Piso: %s\n", l.Piso)
	fmt.Fprintf(&b, "  - Superficie: %d m²\n", l.MetrosCuadrados)
	fmt.Fprintf(&b, "  - Monto de Arriendo: %s UF\n", strconv.FormatFloat(l.MontoArriendoUF, 'f', -1, 64))
	fmt.Fprintf(&b, "  - Estado: %s", l.Estado)
	return b.String()
}

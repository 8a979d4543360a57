package services

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/portalcentro/centrorag/internal/core/ports/driven"
	"github.com/portalcentro/centrorag/internal/core/ports/driving"
	"github.com/portalcentro/centrorag/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// DefaultEmbedRate is the embedding request throttle in requests per second.
const DefaultEmbedRate = 4.0

// IndexService drives the chunking and embedding pipeline that populates
// the vector store. It owns the store's write path.
type IndexService struct {
	source     driven.DocumentSource
	normaliser driven.Normaliser
	chunker    driven.Chunker
	embedder   driven.EmbeddingService
	store      driven.VectorStore
	limiter    *rate.Limiter
}

// NewIndexService creates an index service. embedRate throttles embedding
// calls; zero or negative falls back to DefaultEmbedRate.
func NewIndexService(
	source driven.DocumentSource,
	normaliser driven.Normaliser,
	chunker driven.Chunker,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	embedRate float64,
) *IndexService {
	if embedRate <= 0 {
		embedRate = DefaultEmbedRate
	}
	return &IndexService{
		source:     source,
		normaliser: normaliser,
		chunker:    chunker,
		embedder:   embedder,
		store:      store,
		limiter:    rate.NewLimiter(rate.Limit(embedRate), 1),
	}
}

// Index reads every document under root, cleans and chunks it, embeds each
// chunk, and bulk-upserts the result in a single call. A failure on one
// document (read error, embedding error) is logged and that document is
// skipped; the batch continues. When no chunks were produced, the upsert is
// skipped and the run reports zero.
func (s *IndexService) Index(ctx context.Context, root string) (int, error) {
	logger.Section("Indexing")
	logger.Info("Indexing documents under %s with model %s", root, s.embedder.ModelName())

	paths, err := s.source.ListDocuments(ctx, root)
	if err != nil {
		return 0, err
	}
	logger.Info("Found %d documents", len(paths))

	var (
		ids     []string
		vectors [][]float32
		texts   []string
		sources []string
	)

	for _, path := range paths {
		docIDs, docVectors, docTexts, err := s.processDocument(ctx, path)
		if err != nil {
			// A cancelled context aborts the batch; anything else only
			// skips this document.
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			logger.Error("skipping %s: %v", path, err)
			continue
		}

		ids = append(ids, docIDs...)
		vectors = append(vectors, docVectors...)
		texts = append(texts, docTexts...)
		for range docIDs {
			sources = append(sources, path)
		}
		logger.Debug("Processed %s: %d chunks", path, len(docIDs))
	}

	if len(ids) == 0 {
		logger.Warn("No chunks produced; nothing to index")
		return 0, nil
	}

	if err := s.store.Upsert(ctx, ids, vectors, texts, sources); err != nil {
		return 0, err
	}

	logger.Info("Indexed %d chunks", len(ids))
	return len(ids), nil
}

// processDocument turns one document into embedded chunk columns.
func (s *IndexService) processDocument(ctx context.Context, path string) ([]string, [][]float32, []string, error) {
	doc, err := s.source.ReadDocument(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}

	cleaned := s.normaliser.Clean(doc.Content)
	chunks := s.chunker.Chunk(cleaned, doc.Path)

	ids := make([]string, 0, len(chunks))
	vectors := make([][]float32, 0, len(chunks))
	texts := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, nil, nil, err
		}
		vector, err := s.embedder.Embed(ctx, chunk.Text)
		if err != nil {
			return nil, nil, nil, err
		}
		ids = append(ids, chunk.ID)
		vectors = append(vectors, vector)
		texts = append(texts, chunk.Text)
	}

	return ids, vectors, texts, nil
}

// Package milvus provides a vector store adapter backed by Milvus.
package milvus

import (
	"context"
	"fmt"
	"strconv"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"github.com/portalcentro/centrorag/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Field names for the chunk collection.
const (
	FieldID     = "id"
	FieldText   = "text"
	FieldSource = "source"
	FieldVector = "vector"
)

// HNSW index parameters.
const (
	hnswM              = 16
	hnswEfConstruction = 200
	hnswEfSearch       = 100
)

// Config holds connection settings for the Milvus store.
type Config struct {
	// Address is the Milvus endpoint (host:port).
	Address string

	// Collection is the collection name.
	Collection string

	// Dimensions is the embedding vector size. Must match the embedding
	// service.
	Dimensions int
}

// Store stores and searches chunk vectors in a Milvus collection.
type Store struct {
	client     client.Client
	collection string
	dimensions int
}

// NewStore connects to Milvus and ensures the chunk collection exists with
// the expected schema, index, and load state.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	c, err := client.NewClient(ctx, client.Config{
		Address: cfg.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to milvus at %s: %w", cfg.Address, err)
	}

	s := &Store{
		client:     c,
		collection: cfg.Collection,
		dimensions: cfg.Dimensions,
	}

	if err := s.ensureCollection(ctx); err != nil {
		c.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureCollection(ctx context.Context) error {
	exists, err := s.client.HasCollection(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}

	schema := &entity.Schema{
		CollectionName: s.collection,
		Description:    "Chunk vectors for the PortalCentro memory",
		Fields: []*entity.Field{
			{
				Name:       FieldID,
				DataType:   entity.FieldTypeVarChar,
				PrimaryKey: true,
				AutoID:     false,
				TypeParams: map[string]string{"max_length": "64"},
			},
			{
				Name:       FieldText,
				DataType:   entity.FieldTypeVarChar,
				TypeParams: map[string]string{"max_length": "65535"},
			},
			{
				Name:       FieldSource,
				DataType:   entity.FieldTypeVarChar,
				TypeParams: map[string]string{"max_length": "1024"},
			},
			{
				Name:     FieldVector,
				DataType: entity.FieldTypeFloatVector,
				TypeParams: map[string]string{
					"dim": strconv.Itoa(s.dimensions),
				},
			},
		},
	}

	if err := s.client.CreateCollection(ctx, schema, 1); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	idx, err := entity.NewIndexHNSW(entity.L2, hnswM, hnswEfConstruction)
	if err != nil {
		return fmt.Errorf("build index definition: %w", err)
	}
	if err := s.client.CreateIndex(ctx, s.collection, FieldVector, idx, false); err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	if err := s.client.LoadCollection(ctx, s.collection, false); err != nil {
		return fmt.Errorf("load collection: %w", err)
	}

	return nil
}

// Upsert writes vectors with their chunk text and source in a single bulk
// operation. Existing ids are replaced, so re-indexing the same tree does
// not accumulate near-duplicate entries.
func (s *Store) Upsert(ctx context.Context, ids []string, vectors [][]float32, texts []string, sources []string) error {
	if len(ids) != len(vectors) || len(ids) != len(texts) || len(ids) != len(sources) {
		return fmt.Errorf("upsert: mismatched column lengths")
	}
	if len(ids) == 0 {
		return nil
	}

	columns := []entity.Column{
		entity.NewColumnVarChar(FieldID, ids),
		entity.NewColumnVarChar(FieldText, texts),
		entity.NewColumnVarChar(FieldSource, sources),
		entity.NewColumnFloatVector(FieldVector, s.dimensions, vectors),
	}

	if _, err := s.client.Upsert(ctx, s.collection, "", columns...); err != nil {
		return fmt.Errorf("upsert %d vectors: %w", len(ids), err)
	}

	// Flush so a Count directly after indexing sees the new rows.
	if err := s.client.Flush(ctx, s.collection, false); err != nil {
		return fmt.Errorf("flush collection: %w", err)
	}

	return nil
}

// Count returns the number of entries in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	stats, err := s.client.GetCollectionStatistics(ctx, s.collection)
	if err != nil {
		return 0, fmt.Errorf("collection statistics: %w", err)
	}

	raw, ok := stats["row_count"]
	if !ok {
		return 0, fmt.Errorf("collection statistics missing row_count")
	}
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse row_count %q: %w", raw, err)
	}
	return count, nil
}

// Query returns the topK nearest chunks to the given vector, in store order
// (ascending L2 distance).
func (s *Store) Query(ctx context.Context, vector []float32, topK int) ([]driven.VectorHit, error) {
	if topK <= 0 {
		topK = 3
	}

	sp, err := entity.NewIndexHNSWSearchParam(hnswEfSearch)
	if err != nil {
		return nil, fmt.Errorf("build search parameters: %w", err)
	}

	results, err := s.client.Search(
		ctx,
		s.collection,
		nil, // partitions
		"",  // filter expression
		[]string{FieldText, FieldSource},
		[]entity.Vector{entity.FloatVector(vector)},
		FieldVector,
		entity.L2,
		topK,
		sp,
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	sr := results[0]
	texts, ok := sr.Fields.GetColumn(FieldText).(*entity.ColumnVarChar)
	if !ok {
		return nil, fmt.Errorf("search result missing text column")
	}
	sources, _ := sr.Fields.GetColumn(FieldSource).(*entity.ColumnVarChar)

	hits := make([]driven.VectorHit, 0, sr.ResultCount)
	for i := 0; i < sr.ResultCount; i++ {
		hit := driven.VectorHit{
			Text: texts.Data()[i],
		}
		if sources != nil && i < len(sources.Data()) {
			hit.Source = sources.Data()[i]
		}
		if i < len(sr.Scores) {
			hit.Distance = sr.Scores[i]
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

// Close closes the connection to Milvus.
func (s *Store) Close() error {
	return s.client.Close()
}

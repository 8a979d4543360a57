// Package memory provides an in-process vector store using brute-force
// L2 search. It is not persistent; it exists for tests and for running the
// pipeline without a Milvus instance.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/portalcentro/centrorag/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

type entry struct {
	vector []float32
	text   string
	source string
}

// Store keeps vectors in a map keyed by chunk id.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Upsert writes vectors with their chunk text and source. Existing ids are
// replaced.
func (s *Store) Upsert(_ context.Context, ids []string, vectors [][]float32, texts []string, sources []string) error {
	if len(ids) != len(vectors) || len(ids) != len(texts) || len(ids) != len(sources) {
		return fmt.Errorf("upsert: mismatched column lengths")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range ids {
		s.entries[id] = entry{
			vector: vectors[i],
			text:   texts[i],
			source: sources[i],
		}
	}
	return nil
}

// Count returns the number of stored entries.
func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.entries)), nil
}

// Query returns the topK nearest entries by squared L2 distance, ascending.
func (s *Store) Query(_ context.Context, vector []float32, topK int) ([]driven.VectorHit, error) {
	if topK <= 0 {
		topK = 3
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	hits := make([]driven.VectorHit, 0, len(s.entries))
	for _, e := range s.entries {
		hits = append(hits, driven.VectorHit{
			Text:     e.text,
			Source:   e.source,
			Distance: sqDistance(vector, e.vector),
		})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	if topK < len(hits) {
		hits = hits[:topK]
	}
	return hits, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

func sqDistance(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

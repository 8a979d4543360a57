package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/portalcentro/centrorag/internal/adapters/driven/config/file"
	ollamaembed "github.com/portalcentro/centrorag/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/portalcentro/centrorag/internal/adapters/driven/embedding/openai"
	ollamallm "github.com/portalcentro/centrorag/internal/adapters/driven/llm/ollama"
	openaillm "github.com/portalcentro/centrorag/internal/adapters/driven/llm/openai"
	"github.com/portalcentro/centrorag/internal/adapters/driven/source/filesystem"
	"github.com/portalcentro/centrorag/internal/adapters/driven/storage/sqlite"
	"github.com/portalcentro/centrorag/internal/adapters/driven/vectorstore/memory"
	"github.com/portalcentro/centrorag/internal/adapters/driven/vectorstore/milvus"
	"github.com/portalcentro/centrorag/internal/chunker"
	"github.com/portalcentro/centrorag/internal/core/ports/driven"
	"github.com/portalcentro/centrorag/internal/core/ports/driving"
	"github.com/portalcentro/centrorag/internal/core/services"
	"github.com/portalcentro/centrorag/internal/normalisers/markdown"
)

// defaultAPIKeyEnv is consulted when a backend needs a key and the
// configuration does not name an environment variable.
const defaultAPIKeyEnv = "OPENAI_API_KEY"

// closeAll closes every closer, returning nothing; wiring failures are
// reported where they happen, teardown failures are not actionable.
func closeAll(closers []func() error) {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i]()
	}
}

func loadConfig() (*file.Config, error) {
	return file.Load(cfgPath)
}

func newEmbedder(cfg *file.Config) (driven.EmbeddingService, error) {
	switch cfg.Embedding.Provider {
	case "", "ollama":
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		}), nil
	case "openai":
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:     apiKey(cfg.Embedding),
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}
}

func newLLM(cfg *file.Config) (driven.LLMService, error) {
	switch cfg.LLM.Provider {
	case "", "ollama":
		return ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		}), nil
	case "openai":
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:  apiKey(cfg.LLM),
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

func newVectorStore(ctx context.Context, cfg *file.Config, dimensions int) (driven.VectorStore, error) {
	switch cfg.VectorStore.Provider {
	case "", "milvus":
		return milvus.NewStore(ctx, milvus.Config{
			Address:    cfg.VectorStore.Address,
			Collection: cfg.VectorStore.Collection,
			Dimensions: dimensions,
		})
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown vector store provider %q", cfg.VectorStore.Provider)
	}
}

func newLocaleStore(cfg *file.Config) (driven.LocaleStore, error) {
	path, err := cfg.DBFile()
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path)
}

func apiKey(backend file.BackendConfig) string {
	env := backend.APIKeyEnv
	if env == "" {
		env = defaultAPIKeyEnv
	}
	return os.Getenv(env)
}

// wireIndexService builds the indexing pipeline. The returned cleanup must
// be called when the command finishes.
func wireIndexService(ctx context.Context) (driving.IndexService, *file.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	var closers []func() error

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	closers = append(closers, embedder.Close)

	store, err := newVectorStore(ctx, cfg, embedder.Dimensions())
	if err != nil {
		closeAll(closers)
		return nil, nil, nil, err
	}
	closers = append(closers, store.Close)

	svc := services.NewIndexService(
		filesystem.New(),
		markdown.New(),
		chunker.New(
			chunker.WithChunkSize(cfg.Chunker.Size),
			chunker.WithOverlap(cfg.Chunker.Overlap),
		),
		embedder,
		store,
		cfg.Chunker.EmbedRate,
	)
	return svc, cfg, func() { closeAll(closers) }, nil
}

// wireQueryService builds the full query stack.
func wireQueryService(ctx context.Context) (driving.QueryService, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var closers []func() error

	locales, err := newLocaleStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, locales.Close)

	embedder, err := newEmbedder(cfg)
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}
	closers = append(closers, embedder.Close)

	store, err := newVectorStore(ctx, cfg, embedder.Dimensions())
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}
	closers = append(closers, store.Close)

	llm, err := newLLM(cfg)
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}
	closers = append(closers, llm.Close)

	svc := services.NewQueryService(locales, store, embedder, llm, cfg.TopK)
	return svc, func() { closeAll(closers) }, nil
}

// wireSyncService builds the front-matter synchroniser.
func wireSyncService() (driving.SyncService, *file.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	locales, err := newLocaleStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	svc := services.NewSyncService(filesystem.New(), markdown.New(), locales)
	return svc, cfg, func() { _ = locales.Close() }, nil
}

// wireLocaleStore opens the relational store on its own, for read-only
// listing commands.
func wireLocaleStore() (driven.LocaleStore, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	locales, err := newLocaleStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return locales, func() { _ = locales.Close() }, nil
}

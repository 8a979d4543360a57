// Package file provides the TOML-based configuration for centrorag.
// Configuration lives in a single user-editable file; every field has a
// working default so a missing file is not an error.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
	DefaultTopK         = 3
	DefaultCollection   = "portalcentro_memory"
	DefaultMemoryPath   = "memory/portalcentro"
	DefaultEmbedRate    = 4.0 // embedding requests per second during indexing
)

// Config is the root application configuration.
type Config struct {
	// MemoryPath is the root of the document tree.
	MemoryPath string `toml:"memory_path"`

	// DBPath is the SQLite database file. Empty means ~/.centrorag/portalcentro.db.
	DBPath string `toml:"db_path"`

	Chunker     ChunkerConfig     `toml:"chunker"`
	Embedding   BackendConfig     `toml:"embedding"`
	LLM         BackendConfig     `toml:"llm"`
	VectorStore VectorStoreConfig `toml:"vector_store"`

	// TopK is the number of chunks retrieved per semantic query.
	TopK int `toml:"top_k"`
}

// ChunkerConfig configures how documents are split.
type ChunkerConfig struct {
	Size    int `toml:"size"`
	Overlap int `toml:"overlap"`

	// EmbedRate throttles embedding calls during indexing (requests/sec).
	EmbedRate float64 `toml:"embed_rate"`
}

// BackendConfig selects and configures a model backend.
type BackendConfig struct {
	// Provider is "ollama" or "openai".
	Provider string `toml:"provider"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url"`

	// Model overrides the provider's default model.
	Model string `toml:"model"`

	// APIKeyEnv names the environment variable holding the API key
	// (openai only).
	APIKeyEnv string `toml:"api_key_env"`

	// Dimensions overrides the embedding vector size.
	Dimensions int `toml:"dimensions"`
}

// VectorStoreConfig selects and configures the vector store.
type VectorStoreConfig struct {
	// Provider is "milvus" or "memory".
	Provider string `toml:"provider"`

	// Address is the Milvus endpoint (host:port).
	Address string `toml:"address"`

	// Collection is the vector collection name.
	Collection string `toml:"collection"`
}

// Load reads the configuration from path. If path is empty it defaults to
// ~/.centrorag/config.toml. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(home, ".centrorag", "config.toml")
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// DBFile resolves the SQLite database path, creating the parent directory.
func (c *Config) DBFile() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".centrorag")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(dir, "portalcentro.db"), nil
}

func defaults() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.MemoryPath == "" {
		cfg.MemoryPath = DefaultMemoryPath
	}
	if cfg.Chunker.Size <= 0 {
		cfg.Chunker.Size = DefaultChunkSize
	}
	if cfg.Chunker.Overlap <= 0 {
		cfg.Chunker.Overlap = DefaultChunkOverlap
	}
	if cfg.Chunker.EmbedRate <= 0 {
		cfg.Chunker.EmbedRate = DefaultEmbedRate
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "ollama"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
	}
	if cfg.VectorStore.Provider == "" {
		cfg.VectorStore.Provider = "milvus"
	}
	if cfg.VectorStore.Address == "" {
		cfg.VectorStore.Address = "localhost:19530"
	}
	if cfg.VectorStore.Collection == "" {
		cfg.VectorStore.Collection = DefaultCollection
	}
}

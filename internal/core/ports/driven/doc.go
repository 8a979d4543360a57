// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// The model backends (EmbeddingService, LLMService) and the VectorStore are
// deliberate black boxes: alternate backends can be substituted without
// touching orchestration logic.
//
// Import rules: this package may import domain only, never an adapter.
package driven

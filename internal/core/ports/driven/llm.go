package driven

import "context"

// LLMService provides text generation for answer composition.
//
// Implementations may include:
//   - Ollama (local models)
//   - OpenAI (GPT-4, GPT-4o-mini)
type LLMService interface {
	// Generate produces a non-streaming text completion from a prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}

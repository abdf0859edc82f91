package omnia

import "context"

// EmbeddingProvider is implemented by adapters that can produce
// embedding vectors.
type EmbeddingProvider interface {
	// CreateEmbedding generates an embedding for the provided text.
	CreateEmbedding(ctx context.Context, text string, opts ...EmbeddingOption) (*Embedding, error)
}

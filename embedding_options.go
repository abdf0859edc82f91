package omnia

// EmbeddingOptions contains configuration for an embedding request.
type EmbeddingOptions struct {
	Model string
}

// EmbeddingOption is a functional option for configuring embedding requests.
type EmbeddingOption func(*EmbeddingOptions)

// WithEmbeddingModel sets the model to use for embedding generation.
func WithEmbeddingModel(model string) EmbeddingOption {
	return func(o *EmbeddingOptions) {
		o.Model = model
	}
}

// ApplyEmbeddingOptions applies functional options to an EmbeddingOptions struct.
func ApplyEmbeddingOptions(opts ...EmbeddingOption) *EmbeddingOptions {
	o := &EmbeddingOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

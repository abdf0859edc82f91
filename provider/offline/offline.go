// Package offline is the no-network stub adapter used directly or as
// the fallback target when a remote provider's call fails.
package offline

import (
	"context"
	"math/rand"

	ai "github.com/omnia-ai/omnia"
)

// Canonical placeholder outputs. Callers compare against these to
// detect stub results in tests.
const (
	ChatPlaceholder = "This is a reply generated by the local fallback model. Integrate a real local model to replace it."
	TextPlaceholder = "This is a text completion generated by the local fallback model. Integrate a real local model to replace it."
)

// EmbeddingDimensions is the fixed length of stub embedding vectors.
const EmbeddingDimensions = 1536

// Client is the offline adapter. It never issues network calls and
// never fails.
type Client struct{}

// New creates an offline stub client.
func New() *Client {
	return &Client{}
}

// ChatCompletion returns the fixed chat placeholder wrapped in an
// OpenAI-shaped raw response.
func (c *Client) ChatCompletion(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Completion, error) {
	options := ai.ApplyOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderOffline, ai.OpChat)

	raw := map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{
					"role":    "assistant",
					"content": ChatPlaceholder,
				},
				"finish_reason": "stop",
				"index":         0,
			},
		},
		"model": model,
		"usage": map[string]any{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
	return &ai.Completion{
		Text:         ChatPlaceholder,
		Raw:          raw,
		FinishReason: "stop",
		ServedBy:     ai.ProviderOffline,
	}, nil
}

// TextCompletion returns the fixed text placeholder wrapped in an
// OpenAI-shaped raw response.
func (c *Client) TextCompletion(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Completion, error) {
	options := ai.ApplyOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderOffline, ai.OpText)

	raw := map[string]any{
		"choices": []any{
			map[string]any{
				"text":          TextPlaceholder,
				"finish_reason": "stop",
				"index":         0,
			},
		},
		"model": model,
		"usage": map[string]any{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
	return &ai.Completion{
		Text:         TextPlaceholder,
		Raw:          raw,
		FinishReason: "stop",
		ServedBy:     ai.ProviderOffline,
	}, nil
}

// CreateEmbedding returns a pseudo-random vector of EmbeddingDimensions
// values in [0, 1) as a placeholder embedding.
func (c *Client) CreateEmbedding(ctx context.Context, text string, opts ...ai.EmbeddingOption) (*ai.Embedding, error) {
	vector := make([]float64, EmbeddingDimensions)
	for i := range vector {
		vector[i] = rand.Float64()
	}
	return &ai.Embedding{
		Vector:   vector,
		ServedBy: ai.ProviderOffline,
	}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
var _ ai.TextProvider = (*Client)(nil)
var _ ai.EmbeddingProvider = (*Client)(nil)

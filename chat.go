package omnia

import "context"

// ChatProvider is implemented by adapters that can serve chat completions.
type ChatProvider interface {
	// ChatCompletion sends a conversation and returns the canonical result.
	ChatCompletion(ctx context.Context, messages []Message, opts ...Option) (*Completion, error)
}

// TextProvider is implemented by adapters that can serve legacy
// prompt-in, text-out completions.
type TextProvider interface {
	// TextCompletion sends a prompt and returns the canonical result.
	TextCompletion(ctx context.Context, prompt string, opts ...Option) (*Completion, error)
}

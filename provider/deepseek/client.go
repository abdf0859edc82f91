package deepseek

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	ai "github.com/omnia-ai/omnia"
	"github.com/omnia-ai/omnia/internal/httpx"
)

// API paths relative to the base URL.
const (
	chatPath      = "/chat/completions"
	textPath      = "/completions"
	embeddingPath = "/embeddings"
)

// Client is the DeepSeek adapter. DeepSeek exposes an OpenAI-compatible
// REST API, so payloads and response shapes follow that convention.
type Client struct {
	baseURL   string
	transport *httpx.Client
}

// ClientOption configures the DeepSeek client.
type ClientOption func(*config)

type config struct {
	baseURL string
	timeout time.Duration
	httpc   *http.Client
}

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *config) { c.baseURL = url }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *config) { c.timeout = d }
}

// WithHTTPClient sets a custom HTTP client, which then owns timeout behavior.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *config) { c.httpc = hc }
}

// New creates a DeepSeek client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	cfg := &config{baseURL: ai.ProviderDeepSeek.DefaultBaseURL()}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := httpx.New(apiKey, cfg.timeout)
	if cfg.httpc != nil {
		transport = httpx.NewWithHTTPClient(apiKey, cfg.httpc)
	}
	return &Client{
		baseURL:   cfg.baseURL,
		transport: transport,
	}
}

// ChatCompletion sends a conversation and returns the canonical result.
func (c *Client) ChatCompletion(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Completion, error) {
	options := ai.ApplyOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderDeepSeek, ai.OpChat)

	raw, err := c.transport.PostJSON(ctx, c.baseURL+chatPath, buildChatPayload(messages, model, options))
	if err != nil {
		return nil, err
	}

	text, ok := extractChatText(raw)
	if !ok {
		slog.Warn("unable to extract chat text from response", "provider", ai.ProviderDeepSeek, "model", model)
	}
	return &ai.Completion{
		Text:         text,
		Raw:          raw,
		FinishReason: extractFinishReason(raw),
		ServedBy:     ai.ProviderDeepSeek,
	}, nil
}

// TextCompletion sends a prompt and returns the canonical result.
func (c *Client) TextCompletion(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Completion, error) {
	options := ai.ApplyOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderDeepSeek, ai.OpText)

	raw, err := c.transport.PostJSON(ctx, c.baseURL+textPath, buildTextPayload(prompt, model, options))
	if err != nil {
		return nil, err
	}

	text, ok := extractTextCompletionText(raw)
	if !ok {
		slog.Warn("unable to extract completion text from response", "provider", ai.ProviderDeepSeek, "model", model)
	}
	return &ai.Completion{
		Text:         text,
		Raw:          raw,
		FinishReason: extractFinishReason(raw),
		ServedBy:     ai.ProviderDeepSeek,
	}, nil
}

// CreateEmbedding generates an embedding for the provided text.
func (c *Client) CreateEmbedding(ctx context.Context, text string, opts ...ai.EmbeddingOption) (*ai.Embedding, error) {
	options := ai.ApplyEmbeddingOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderDeepSeek, ai.OpEmbedding)

	raw, err := c.transport.PostJSON(ctx, c.baseURL+embeddingPath, buildEmbeddingPayload(text, model))
	if err != nil {
		return nil, err
	}

	vector, ok := extractEmbedding(raw)
	if !ok {
		slog.Warn("unable to extract embedding from response", "provider", ai.ProviderDeepSeek, "model", model)
	}
	return &ai.Embedding{
		Vector:   vector,
		ServedBy: ai.ProviderDeepSeek,
	}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
var _ ai.TextProvider = (*Client)(nil)
var _ ai.EmbeddingProvider = (*Client)(nil)

package openai

import (
	"context"
	"log/slog"
	"net/http"

	ai "github.com/omnia-ai/omnia"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the official OpenAI SDK to implement the omnia provider
// interfaces.
type Client struct {
	client *openai.Client
}

// ClientOption configures the OpenAI client.
type ClientOption func(*[]option.RequestOption)

// WithBaseURL overrides the default API base URL, for OpenAI-compatible
// endpoints.
func WithBaseURL(url string) ClientOption {
	return func(opts *[]option.RequestOption) {
		*opts = append(*opts, option.WithBaseURL(url))
	}
}

// WithHTTPClient sets a custom HTTP client for SDK requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(opts *[]option.RequestOption) {
		*opts = append(*opts, option.WithHTTPClient(hc))
	}
}

// New creates an OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	// Single attempt per call; recovery is the caller's fallback
	// substitution, not SDK-level retries.
	requestOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	for _, opt := range opts {
		opt(&requestOpts)
	}
	client := openai.NewClient(requestOpts...)
	return &Client{client: &client}
}

// ChatCompletion sends a conversation and returns the canonical result.
func (c *Client) ChatCompletion(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Completion, error) {
	options := ai.ApplyOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderOpenAI, ai.OpChat)

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    convertMessages(messages),
		Temperature: openai.Float(options.TemperatureOrDefault()),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, extraOptions(options)...)
	if err != nil {
		return nil, err
	}

	text, ok := extractChatText(resp)
	if !ok {
		slog.Warn("unable to extract chat text from response", "provider", ai.ProviderOpenAI, "model", model)
	}
	return &ai.Completion{
		Text:         text,
		Raw:          resp,
		FinishReason: extractChatFinishReason(resp),
		ServedBy:     ai.ProviderOpenAI,
	}, nil
}

// TextCompletion sends a prompt to the legacy completions API and
// returns the canonical result.
func (c *Client) TextCompletion(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Completion, error) {
	options := ai.ApplyOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderOpenAI, ai.OpText)

	params := openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(prompt),
		},
		Temperature: openai.Float(options.TemperatureOrDefault()),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}

	resp, err := c.client.Completions.New(ctx, params, extraOptions(options)...)
	if err != nil {
		return nil, err
	}

	text, ok := extractTextCompletionText(resp)
	if !ok {
		slog.Warn("unable to extract completion text from response", "provider", ai.ProviderOpenAI, "model", model)
	}
	return &ai.Completion{
		Text:         text,
		Raw:          resp,
		FinishReason: extractTextFinishReason(resp),
		ServedBy:     ai.ProviderOpenAI,
	}, nil
}

// CreateEmbedding generates an embedding for the provided text.
func (c *Client) CreateEmbedding(ctx context.Context, text string, opts ...ai.EmbeddingOption) (*ai.Embedding, error) {
	options := ai.ApplyEmbeddingOptions(opts...)
	model := ai.ResolveModel(options.Model, ai.ProviderOpenAI, ai.OpEmbedding)

	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
	}

	resp, err := c.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, err
	}

	vector, ok := extractEmbedding(resp)
	if !ok {
		slog.Warn("unable to extract embedding from response", "provider", ai.ProviderOpenAI, "model", model)
	}
	return &ai.Embedding{
		Vector:   vector,
		ServedBy: ai.ProviderOpenAI,
	}, nil
}

// convertMessages maps omnia messages onto SDK message params.
func convertMessages(messages []ai.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case ai.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}

// extraOptions turns the open parameter bag into per-request JSON
// overrides on the SDK call.
func extraOptions(options *ai.Options) []option.RequestOption {
	if len(options.Extra) == 0 {
		return nil
	}
	requestOpts := make([]option.RequestOption, 0, len(options.Extra))
	for k, v := range options.Extra {
		requestOpts = append(requestOpts, option.WithJSONSet(k, v))
	}
	return requestOpts
}

var _ ai.ChatProvider = (*Client)(nil)
var _ ai.TextProvider = (*Client)(nil)
var _ ai.EmbeddingProvider = (*Client)(nil)

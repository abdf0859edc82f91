package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	ai "github.com/omnia-ai/omnia"
	"github.com/omnia-ai/omnia/provider/deepseek"
	"github.com/omnia-ai/omnia/provider/offline"
	"github.com/omnia-ai/omnia/provider/ollama"
	"github.com/omnia-ai/omnia/provider/openai"
)

var validate = validator.New()

// Config holds configuration for creating a unified client. It is read
// once at construction; the client never mutates it afterwards.
type Config struct {
	// Provider selects the backend adapter.
	Provider ai.Provider `validate:"required,oneof=openai deepseek ollama offline"`

	// APIKey authenticates against the provider. When empty, the
	// provider's environment variable is consulted (OPENAI_API_KEY,
	// DEEPSEEK_API_KEY, OLLAMA_API_KEY).
	APIKey string

	// BaseURL overrides the provider's default API base URL.
	BaseURL string `validate:"omitempty,url"`

	// DisableFallback turns off the offline substitution on provider
	// failure. With fallback disabled, a missing required credential is
	// a construction error and call failures surface as *ProviderError.
	DisableFallback bool

	// Timeout bounds each request when no HTTPClient is supplied.
	// Zero means the transport default.
	Timeout time.Duration

	// HTTPClient, when set, replaces the default transport client and
	// owns timeout behavior.
	HTTPClient *http.Client

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned at construction when the provider
// requires a credential, none is available, and fallback is disabled.
type ErrMissingAPIKey struct {
	Provider ai.Provider
	EnvVar   string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.EnvVar != "" {
		return fmt.Sprintf("no API key configured for %s: supply one or set %s", e.Provider, e.EnvVar)
	}
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrFeatureNotSupported is returned when an operation is unavailable
// for the configured provider.
type ErrFeatureNotSupported struct {
	Provider ai.Provider
	Feature  string
}

func (e *ErrFeatureNotSupported) Error() string {
	return fmt.Sprintf("%s provider does not support %s", e.Provider, e.Feature)
}

// Client is a unified interface to chat, text completion, and embedding
// across providers. The adapter is selected once at construction; a
// Client is safe for concurrent use.
type Client struct {
	provider ai.Provider
	fallback bool
	events   chan<- Event

	chat  ai.ChatProvider
	text  ai.TextProvider
	embed ai.EmbeddingProvider

	// stub serves fallback substitutions. Also the active adapter when
	// Provider is offline.
	stub *offline.Client

	// ollama is non-nil only for the ollama provider; it carries the
	// model management endpoints.
	ollama *ollama.Client
}

// New creates a unified client with the given configuration. The
// adapter for cfg.Provider is constructed immediately; misconfiguration
// is surfaced here, never deferred to the first call.
func New(cfg Config) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		if envVar := cfg.Provider.CredentialEnvVar(); envVar != "" {
			apiKey = os.Getenv(envVar)
		}
	}

	fallback := !cfg.DisableFallback
	if cfg.Provider.RequiresCredential() && apiKey == "" && !fallback {
		return nil, &ErrMissingAPIKey{Provider: cfg.Provider, EnvVar: cfg.Provider.CredentialEnvVar()}
	}

	c := &Client{
		provider: cfg.Provider,
		fallback: fallback,
		events:   cfg.Events,
		stub:     offline.New(),
	}

	switch cfg.Provider {
	case ai.ProviderOpenAI:
		var opts []openai.ClientOption
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		if cfg.HTTPClient != nil {
			opts = append(opts, openai.WithHTTPClient(cfg.HTTPClient))
		}
		p := openai.New(apiKey, opts...)
		c.chat, c.text, c.embed = p, p, p
	case ai.ProviderDeepSeek:
		opts := []deepseek.ClientOption{deepseek.WithTimeout(cfg.Timeout)}
		if cfg.BaseURL != "" {
			opts = append(opts, deepseek.WithBaseURL(cfg.BaseURL))
		}
		if cfg.HTTPClient != nil {
			opts = append(opts, deepseek.WithHTTPClient(cfg.HTTPClient))
		}
		p := deepseek.New(apiKey, opts...)
		c.chat, c.text, c.embed = p, p, p
	case ai.ProviderOllama:
		opts := []ollama.ClientOption{ollama.WithAPIKey(apiKey), ollama.WithTimeout(cfg.Timeout)}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithBaseURL(cfg.BaseURL))
		}
		if cfg.HTTPClient != nil {
			opts = append(opts, ollama.WithHTTPClient(cfg.HTTPClient))
		}
		p := ollama.New(opts...)
		c.chat, c.text, c.embed = p, p, p
		c.ollama = p
	case ai.ProviderOffline:
		c.chat, c.text, c.embed = c.stub, c.stub, c.stub
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}

	return c, nil
}

// ChatCompletion sends a conversation and returns the canonical result.
// On provider failure the offline stub's result is substituted when
// fallback is enabled; otherwise a *omnia.ProviderError is returned.
func (c *Client) ChatCompletion(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Completion, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", ai.ErrEmptyInput)
	}
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	start := time.Now()
	emit(c.events, Event{Type: EventRequestStart, Op: ai.OpChat, Provider: c.provider})

	resp, err := c.chat.ChatCompletion(ctx, messages, opts...)
	if err != nil {
		if sub, ok := c.substitute(ai.OpChat, err); ok {
			resp, _ = c.stub.ChatCompletion(ctx, messages, opts...)
			emit(c.events, Event{Type: sub, Op: ai.OpChat, Provider: c.provider, Duration: time.Since(start), Error: err})
			return resp, nil
		}
		emit(c.events, Event{Type: EventRequestError, Op: ai.OpChat, Provider: c.provider, Duration: time.Since(start), Error: err})
		return nil, &ai.ProviderError{Provider: c.provider, Op: ai.OpChat, Err: err}
	}

	emit(c.events, Event{Type: EventRequestComplete, Op: ai.OpChat, Provider: c.provider, Duration: time.Since(start)})
	return resp, nil
}

// TextCompletion sends a prompt and returns the canonical result, with
// the same fallback behavior as ChatCompletion.
func (c *Client) TextCompletion(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Completion, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	start := time.Now()
	emit(c.events, Event{Type: EventRequestStart, Op: ai.OpText, Provider: c.provider})

	resp, err := c.text.TextCompletion(ctx, prompt, opts...)
	if err != nil {
		if sub, ok := c.substitute(ai.OpText, err); ok {
			resp, _ = c.stub.TextCompletion(ctx, prompt, opts...)
			emit(c.events, Event{Type: sub, Op: ai.OpText, Provider: c.provider, Duration: time.Since(start), Error: err})
			return resp, nil
		}
		emit(c.events, Event{Type: EventRequestError, Op: ai.OpText, Provider: c.provider, Duration: time.Since(start), Error: err})
		return nil, &ai.ProviderError{Provider: c.provider, Op: ai.OpText, Err: err}
	}

	emit(c.events, Event{Type: EventRequestComplete, Op: ai.OpText, Provider: c.provider, Duration: time.Since(start)})
	return resp, nil
}

// CreateEmbedding generates an embedding for the provided text, with
// the same fallback behavior as ChatCompletion.
func (c *Client) CreateEmbedding(ctx context.Context, text string, opts ...ai.EmbeddingOption) (*ai.Embedding, error) {
	start := time.Now()
	emit(c.events, Event{Type: EventRequestStart, Op: ai.OpEmbedding, Provider: c.provider})

	resp, err := c.embed.CreateEmbedding(ctx, text, opts...)
	if err != nil {
		if sub, ok := c.substitute(ai.OpEmbedding, err); ok {
			resp, _ = c.stub.CreateEmbedding(ctx, text, opts...)
			emit(c.events, Event{Type: sub, Op: ai.OpEmbedding, Provider: c.provider, Duration: time.Since(start), Error: err})
			return resp, nil
		}
		emit(c.events, Event{Type: EventRequestError, Op: ai.OpEmbedding, Provider: c.provider, Duration: time.Since(start), Error: err})
		return nil, &ai.ProviderError{Provider: c.provider, Op: ai.OpEmbedding, Err: err}
	}

	emit(c.events, Event{Type: EventRequestComplete, Op: ai.OpEmbedding, Provider: c.provider, Duration: time.Since(start)})
	return resp, nil
}

// ListModels returns the model names installed on the Ollama server.
// For other providers it returns an empty slice; the operation never fails.
func (c *Client) ListModels(ctx context.Context) []string {
	if c.ollama == nil {
		slog.Debug("model listing is only available for the ollama provider", "provider", c.provider)
		return []string{}
	}
	return c.ollama.ListModels(ctx)
}

// PullModel asks the Ollama server to fetch a model by name and returns
// the raw server response. There is no fallback for model management;
// transport failures propagate.
func (c *Client) PullModel(ctx context.Context, name string) (map[string]any, error) {
	if c.ollama == nil {
		return nil, &ErrFeatureNotSupported{Provider: c.provider, Feature: "model management"}
	}
	return c.ollama.PullModel(ctx, name)
}

// Provider returns the configured provider identity.
func (c *Client) Provider() ai.Provider {
	return c.provider
}

// substitute decides whether a failed call is served by the stub. The
// single substitution is the only recovery; there are no retries
// against the failed provider.
func (c *Client) substitute(op ai.Operation, err error) (EventType, bool) {
	if !c.fallback || c.provider == ai.ProviderOffline {
		return "", false
	}
	slog.Warn("provider call failed, serving offline fallback",
		"provider", c.provider, "operation", op, "err", err)
	return EventFallback, true
}

// checkOptions rejects out-of-range request parameters before any
// network traffic.
func checkOptions(opts []ai.Option) error {
	options := ai.ApplyOptions(opts...)
	if t := options.Temperature; t != nil {
		if err := validate.Var(*t, "gte=0,lte=1"); err != nil {
			return ai.NewUserInputError(fmt.Sprintf("temperature %v outside [0,1]", *t), 0, err)
		}
	}
	if options.MaxTokens < 0 {
		return ai.NewUserInputError(fmt.Sprintf("max tokens %d must be positive", options.MaxTokens), 0, nil)
	}
	return nil
}

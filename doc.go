// Package omnia provides a unified client for AI chat, text completion,
// and embedding services across multiple providers.
//
// The library abstracts away provider-specific request and response
// shapes, allowing you to write code once and switch between OpenAI,
// DeepSeek, a local Ollama server, and an offline stub with minimal
// changes. When a remote call fails, the client can transparently fall
// back to the offline stub instead of surfacing the error.
//
// # Core Interfaces
//
// The library defines three provider interfaces:
//
//   - [ChatProvider]: send a conversation and receive a completion
//   - [TextProvider]: send a prompt and receive a completion
//   - [EmbeddingProvider]: generate a vector embedding for text
//
// Use the [github.com/omnia-ai/omnia/client] package as the entry point
// for provider access.
//
// # Basic Usage
//
//	c, err := client.New(client.Config{
//	    Provider: omnia.ProviderOpenAI,
//	    APIKey:   os.Getenv("OPENAI_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	messages := []omnia.Message{
//	    {Role: omnia.RoleUser, Content: "What is the capital of France?"},
//	}
//
//	resp, err := c.ChatCompletion(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Text)
//
// # Configuration Options
//
// Customize requests with functional options:
//
//	resp, err := c.ChatCompletion(ctx, messages,
//	    omnia.WithModel("gpt-4o"),
//	    omnia.WithMaxTokens(1000),
//	    omnia.WithTemperature(0.2),
//	)
//
// # Fallback
//
// Fallback is enabled by default. When the configured provider's call
// fails, the operation is re-issued against the offline stub and its
// placeholder result is returned; [Completion.ServedBy] reports which
// provider actually produced the result. Disable the behavior with
// client.Config.DisableFallback to surface a [*ProviderError] instead.
package omnia

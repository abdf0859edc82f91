// Package client is the unified entry point for provider access.
//
// A Client is configured once with a provider identity, credential, and
// base URL, then exposes the three logical operations: ChatCompletion,
// TextCompletion, and CreateEmbedding. The provider adapter is selected
// at construction; every call dispatches through it without further
// branching.
//
// # Fallback
//
// By default, a failed provider call is served by the offline stub
// instead of returning an error. The result's ServedBy field reports
// the substitution. Set Config.DisableFallback to surface failures as
// *omnia.ProviderError values carrying the provider identity and the
// underlying cause.
//
//	c, err := client.New(client.Config{
//	    Provider: omnia.ProviderOllama,
//	    BaseURL:  "http://localhost:11434",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.ChatCompletion(ctx, []omnia.Message{
//	    {Role: omnia.RoleUser, Content: "hi"},
//	})
//
// # Observability
//
// Supply Config.Events to receive non-blocking request lifecycle
// events, including fallback substitutions.
package client

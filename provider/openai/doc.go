// Package openai provides an OpenAI API client implementing the omnia
// provider interfaces.
//
// This package wraps the official OpenAI Go SDK rather than issuing
// raw HTTP requests. Chat uses /chat/completions, text uses the legacy
// /completions endpoint, embeddings use /embeddings. Its extractors
// also accept plain decoded JSON maps, so responses captured from
// OpenAI-compatible endpoints normalize the same way as SDK structs.
//
// # Basic Usage
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//
//	resp, err := client.ChatCompletion(ctx, []omnia.Message{
//	    {Role: omnia.RoleSystem, Content: "You are a helpful assistant."},
//	    {Role: omnia.RoleUser, Content: "Hello!"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Text)
//
// # Model Selection
//
// Defaults come from the (provider, operation) table in the root
// package; override per request:
//
//	resp, err := client.ChatCompletion(ctx, messages, omnia.WithModel("gpt-4o"))
package openai

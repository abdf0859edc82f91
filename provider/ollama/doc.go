// Package ollama provides a client for a locally hosted Ollama server
// implementing the omnia provider interfaces.
//
// Ollama's API differs from the OpenAI-compatible shape: chat at
// /api/chat, generation at /api/generate, embeddings at
// /api/embeddings, with sampling controls nested under an "options"
// object (num_predict caps generated tokens) and streaming disabled
// explicitly per request.
//
// The package also exposes the server's model management endpoints:
// [Client.ListModels] (GET /api/tags) and [Client.PullModel]
// (POST /api/pull).
//
// # Basic Usage
//
//	client := ollama.New(ollama.WithBaseURL("http://localhost:11434"))
//
//	resp, err := client.ChatCompletion(ctx, []omnia.Message{
//	    {Role: omnia.RoleUser, Content: "Hello!"},
//	}, omnia.WithModel("llama2"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Text)
package ollama

// Package deepseek provides a DeepSeek API client implementing the
// omnia provider interfaces.
//
// DeepSeek's REST API is OpenAI-compatible: chat completions at
// /chat/completions, legacy completions at /completions, and embeddings
// at /embeddings, with temperature and max_tokens as top-level request
// fields.
//
// # Basic Usage
//
//	client := deepseek.New(os.Getenv("DEEPSEEK_API_KEY"))
//
//	resp, err := client.ChatCompletion(ctx, []omnia.Message{
//	    {Role: omnia.RoleUser, Content: "Hello!"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Text)
package deepseek

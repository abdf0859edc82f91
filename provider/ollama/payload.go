package ollama

import ai "github.com/omnia-ai/omnia"

// buildChatPayload assembles the request body for POST /api/chat.
// Ollama nests generation controls under "options" (num_predict stands
// in for a max token count) and requires "stream": false for a single
// JSON response.
func buildChatPayload(messages []ai.Message, model string, opts *ai.Options) map[string]any {
	converted := make([]map[string]any, len(messages))
	for i, m := range messages {
		converted[i] = map[string]any{
			"role":    string(m.Role),
			"content": m.Content,
		}
	}

	payload := map[string]any{
		"model":    model,
		"messages": converted,
		"stream":   false,
	}
	payload["options"] = buildOptions(opts)
	return payload
}

// buildTextPayload assembles the request body for POST /api/generate.
func buildTextPayload(prompt, model string, opts *ai.Options) map[string]any {
	payload := map[string]any{
		"model":  model,
		"prompt": prompt,
		"stream": false,
	}
	payload["options"] = buildOptions(opts)
	return payload
}

// buildEmbeddingPayload assembles the request body for POST /api/embeddings.
func buildEmbeddingPayload(text, model string) map[string]any {
	return map[string]any{
		"model":  model,
		"prompt": text,
	}
}

// buildOptions collects the "options" sub-object. Extras land here too,
// since Ollama keeps all sampling parameters in one place.
func buildOptions(opts *ai.Options) map[string]any {
	options := map[string]any{
		"temperature": opts.TemperatureOrDefault(),
	}
	if opts.MaxTokens > 0 {
		options["num_predict"] = opts.MaxTokens
	}
	for k, v := range opts.Extra {
		if k != "temperature" && k != "num_predict" {
			options[k] = v
		}
	}
	return options
}

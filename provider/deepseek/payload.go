package deepseek

import ai "github.com/omnia-ai/omnia"

// Reserved payload keys that extras may not override.
func reserved(key string) bool {
	switch key {
	case "model", "messages", "prompt", "input", "temperature", "max_tokens":
		return true
	}
	return false
}

// buildChatPayload assembles the request body for POST /chat/completions.
// Temperature and max_tokens are top-level fields.
func buildChatPayload(messages []ai.Message, model string, opts *ai.Options) map[string]any {
	converted := make([]map[string]any, len(messages))
	for i, m := range messages {
		converted[i] = map[string]any{
			"role":    string(m.Role),
			"content": m.Content,
		}
	}

	payload := map[string]any{
		"model":       model,
		"messages":    converted,
		"temperature": opts.TemperatureOrDefault(),
	}
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}
	for k, v := range opts.Extra {
		if !reserved(k) {
			payload[k] = v
		}
	}
	return payload
}

// buildTextPayload assembles the request body for POST /completions.
func buildTextPayload(prompt, model string, opts *ai.Options) map[string]any {
	payload := map[string]any{
		"model":       model,
		"prompt":      prompt,
		"temperature": opts.TemperatureOrDefault(),
	}
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}
	for k, v := range opts.Extra {
		if !reserved(k) {
			payload[k] = v
		}
	}
	return payload
}

// buildEmbeddingPayload assembles the request body for POST /embeddings.
func buildEmbeddingPayload(text, model string) map[string]any {
	return map[string]any{
		"model": model,
		"input": text,
	}
}

package openai

import (
	"github.com/omnia-ai/omnia/internal/normalize"
	"github.com/openai/openai-go"
)

// The extractors accept either the SDK response structs or a decoded
// JSON map. Callers that captured a raw response from an
// OpenAI-compatible endpoint get the same canonical values.

func extractChatText(raw any) (string, bool) {
	switch r := raw.(type) {
	case *openai.ChatCompletion:
		if len(r.Choices) == 0 {
			return "", false
		}
		return r.Choices[0].Message.Content, true
	case map[string]any:
		return normalize.String(r, "choices", 0, "message", "content")
	}
	return "", false
}

func extractChatFinishReason(raw any) string {
	switch r := raw.(type) {
	case *openai.ChatCompletion:
		if len(r.Choices) == 0 {
			return ""
		}
		return string(r.Choices[0].FinishReason)
	case map[string]any:
		s, _ := normalize.String(r, "choices", 0, "finish_reason")
		return s
	}
	return ""
}

func extractTextCompletionText(raw any) (string, bool) {
	switch r := raw.(type) {
	case *openai.Completion:
		if len(r.Choices) == 0 {
			return "", false
		}
		return r.Choices[0].Text, true
	case map[string]any:
		return normalize.String(r, "choices", 0, "text")
	}
	return "", false
}

func extractTextFinishReason(raw any) string {
	switch r := raw.(type) {
	case *openai.Completion:
		if len(r.Choices) == 0 {
			return ""
		}
		return string(r.Choices[0].FinishReason)
	case map[string]any:
		s, _ := normalize.String(r, "choices", 0, "finish_reason")
		return s
	}
	return ""
}

func extractEmbedding(raw any) ([]float64, bool) {
	switch r := raw.(type) {
	case *openai.CreateEmbeddingResponse:
		if len(r.Data) == 0 {
			return nil, false
		}
		return r.Data[0].Embedding, true
	case map[string]any:
		return normalize.Floats(r, "data", 0, "embedding")
	}
	return nil, false
}

package deepseek

import (
	"github.com/omnia-ai/omnia/internal/normalize"
)

// extractChatText pulls the assistant message out of an
// OpenAI-compatible chat response. Returns false when the response has
// an unexpected shape.
func extractChatText(raw map[string]any) (string, bool) {
	return normalize.String(raw, "choices", 0, "message", "content")
}

// extractTextCompletionText pulls the generated text out of an
// OpenAI-compatible completion response.
func extractTextCompletionText(raw map[string]any) (string, bool) {
	return normalize.String(raw, "choices", 0, "text")
}

// extractEmbedding pulls the vector out of an OpenAI-compatible
// embedding response.
func extractEmbedding(raw map[string]any) ([]float64, bool) {
	return normalize.Floats(raw, "data", 0, "embedding")
}

// extractFinishReason is best effort; "" when absent.
func extractFinishReason(raw map[string]any) string {
	s, _ := normalize.String(raw, "choices", 0, "finish_reason")
	return s
}

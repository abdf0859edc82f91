package ollama

import (
	"github.com/omnia-ai/omnia/internal/normalize"
)

// extractChatText pulls the assistant message out of an /api/chat
// response ({"message": {"content": ...}}).
func extractChatText(raw map[string]any) (string, bool) {
	return normalize.String(raw, "message", "content")
}

// extractTextCompletionText pulls the generated text out of an
// /api/generate response ({"response": ...}).
func extractTextCompletionText(raw map[string]any) (string, bool) {
	return normalize.String(raw, "response")
}

// extractEmbedding pulls the vector out of an /api/embeddings response
// ({"embedding": [...]}).
func extractEmbedding(raw map[string]any) ([]float64, bool) {
	return normalize.Floats(raw, "embedding")
}

// extractFinishReason is best effort; "" when absent.
func extractFinishReason(raw map[string]any) string {
	s, _ := normalize.String(raw, "done_reason")
	return s
}

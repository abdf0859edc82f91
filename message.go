package omnia

import "github.com/google/uuid"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation. Messages are
// ordered oldest first; the order is part of the conversation's meaning.
type Message struct {
	// ID is an optional unique identifier for the message.
	ID      string `json:"id,omitempty"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// Completion is the canonical result of a chat or text completion,
// independent of which provider served it.
type Completion struct {
	// Text is the generated text. Always populated on success; empty
	// string when extraction from the raw response failed.
	Text string `json:"text"`
	// Raw is the untouched provider response: a decoded JSON map for
	// REST providers, or the SDK response struct for OpenAI.
	Raw any `json:"raw,omitempty"`
	// FinishReason reports why generation stopped, when the provider
	// exposes one.
	FinishReason string `json:"finishReason,omitempty"`
	// ServedBy identifies the provider that actually produced the
	// result. Differs from the configured provider after a fallback.
	ServedBy Provider `json:"servedBy"`
}

// Embedding is the canonical result of an embedding request.
type Embedding struct {
	// Vector is the embedding. Dimensionality is provider-defined.
	Vector []float64 `json:"vector"`
	// ServedBy identifies the provider that produced the vector.
	ServedBy Provider `json:"servedBy"`
}

package omnia

// Provider identifies an AI provider backend.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderOpenAI   Provider = "openai"
	ProviderDeepSeek Provider = "deepseek"
	ProviderOllama   Provider = "ollama"
	ProviderOffline  Provider = "offline"
)

// RequiresCredential reports whether the provider refuses unauthenticated
// requests. Ollama accepts an optional key; the offline stub needs none.
func (p Provider) RequiresCredential() bool {
	return p == ProviderOpenAI || p == ProviderDeepSeek
}

// CredentialEnvVar returns the environment variable consulted when no API
// key is supplied explicitly, or "" if the provider has none.
func (p Provider) CredentialEnvVar() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	case ProviderOllama:
		return "OLLAMA_API_KEY"
	default:
		return ""
	}
}

// DefaultBaseURL returns the provider's default API base URL.
func (p Provider) DefaultBaseURL() string {
	switch p {
	case ProviderOpenAI:
		return "https://api.openai.com/v1"
	case ProviderDeepSeek:
		return "https://api.deepseek.com/v1"
	case ProviderOllama:
		return "http://localhost:11434"
	default:
		return ""
	}
}

// Operation identifies a logical API operation.
type Operation string

// String returns the operation identifier.
func (o Operation) String() string { return string(o) }

// Supported operations.
const (
	OpChat      Operation = "chat"
	OpText      Operation = "text"
	OpEmbedding Operation = "embedding"
)

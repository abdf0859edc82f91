package omnia

// defaultModels maps (provider, operation) to the model used when a
// request does not name one. Read-only after package init.
var defaultModels = map[Provider]map[Operation]string{
	ProviderOpenAI: {
		OpChat:      "gpt-3.5-turbo",
		OpText:      "gpt-3.5-turbo-instruct",
		OpEmbedding: "text-embedding-ada-002",
	},
	ProviderDeepSeek: {
		OpChat:      "deepseek-chat",
		OpText:      "deepseek-coder",
		OpEmbedding: "deepseek-embedding",
	},
	ProviderOllama: {
		OpChat:      "llama2",
		OpText:      "llama2",
		OpEmbedding: "llama2",
	},
	ProviderOffline: {
		OpChat:      "local-model",
		OpText:      "local-model",
		OpEmbedding: "local-embedding",
	},
}

// DefaultModel returns the default model for a provider and operation,
// or "" for an unknown combination.
func DefaultModel(p Provider, op Operation) string {
	return defaultModels[p][op]
}

// ResolveModel returns the explicit model if non-empty, otherwise the
// provider's default for the operation.
func ResolveModel(model string, p Provider, op Operation) string {
	if model != "" {
		return model
	}
	return DefaultModel(p, op)
}

package ollama

import (
	"context"
	"log/slog"

	"github.com/omnia-ai/omnia/internal/normalize"
)

// ListModels returns the names of models installed on the server via
// GET /api/tags. Any failure yields an empty slice; this is an
// administrative convenience, not part of the completion contract.
func (c *Client) ListModels(ctx context.Context) []string {
	raw, err := c.transport.GetJSON(ctx, c.baseURL+tagsPath)
	if err != nil {
		slog.Warn("unable to list models", "err", err)
		return []string{}
	}

	names, ok := normalize.Strings(raw, []any{"models"}, "name")
	if !ok {
		slog.Warn("unexpected model list response shape")
		return []string{}
	}
	return names
}

// PullModel asks the server to fetch a model by name via POST /api/pull
// and returns the raw server response. Transport failures propagate;
// there is no fallback for model management.
func (c *Client) PullModel(ctx context.Context, name string) (map[string]any, error) {
	return c.transport.PostJSON(ctx, c.baseURL+pullPath, map[string]any{
		"name":   name,
		"stream": false,
	})
}

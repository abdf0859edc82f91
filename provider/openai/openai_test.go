package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/omnia-ai/omnia"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestConvertMessages(t *testing.T) {
	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: "be brief"},
		{Role: ai.RoleUser, Content: "hi"},
		{Role: ai.RoleAssistant, Content: "hello"},
	}

	converted := convertMessages(messages)
	require.Len(t, converted, 3)
	assert.NotNil(t, converted[0].OfSystem)
	assert.NotNil(t, converted[1].OfUser)
	assert.NotNil(t, converted[2].OfAssistant)
}

func TestExtractChatText(t *testing.T) {
	t.Run("SDK response struct", func(t *testing.T) {
		resp := &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{
				{
					Message:      openai.ChatCompletionMessage{Content: "hello"},
					FinishReason: "stop",
				},
			},
		}
		text, ok := extractChatText(resp)
		assert.True(t, ok)
		assert.Equal(t, "hello", text)
		assert.Equal(t, "stop", extractChatFinishReason(resp))
	})

	t.Run("decoded JSON map", func(t *testing.T) {
		fixture := decode(t, `{"choices":[{"message":{"content":"hello"},"finish_reason":"stop"}]}`)
		text, ok := extractChatText(fixture)
		assert.True(t, ok)
		assert.Equal(t, "hello", text)
		assert.Equal(t, "stop", extractChatFinishReason(fixture))
	})

	t.Run("empty choices", func(t *testing.T) {
		_, ok := extractChatText(&openai.ChatCompletion{})
		assert.False(t, ok)
		assert.Empty(t, extractChatFinishReason(&openai.ChatCompletion{}))
	})

	t.Run("unsupported representation", func(t *testing.T) {
		_, ok := extractChatText("just a string")
		assert.False(t, ok)
	})
}

func TestExtractTextCompletionText(t *testing.T) {
	t.Run("SDK response struct", func(t *testing.T) {
		resp := &openai.Completion{
			Choices: []openai.CompletionChoice{
				{Text: "roses are red", FinishReason: "length"},
			},
		}
		text, ok := extractTextCompletionText(resp)
		assert.True(t, ok)
		assert.Equal(t, "roses are red", text)
		assert.Equal(t, "length", extractTextFinishReason(resp))
	})

	t.Run("decoded JSON map", func(t *testing.T) {
		fixture := decode(t, `{"choices":[{"text":"roses are red"}]}`)
		text, ok := extractTextCompletionText(fixture)
		assert.True(t, ok)
		assert.Equal(t, "roses are red", text)
	})

	t.Run("missing key", func(t *testing.T) {
		fixture := decode(t, `{"id":"cmpl-1"}`)
		text, ok := extractTextCompletionText(fixture)
		assert.False(t, ok)
		assert.Empty(t, text)
	})
}

func TestExtractEmbedding(t *testing.T) {
	t.Run("SDK response struct", func(t *testing.T) {
		resp := &openai.CreateEmbeddingResponse{
			Data: []openai.Embedding{{Embedding: []float64{0.1, 0.2}}},
		}
		vector, ok := extractEmbedding(resp)
		assert.True(t, ok)
		assert.Equal(t, []float64{0.1, 0.2}, vector)
	})

	t.Run("decoded JSON map", func(t *testing.T) {
		fixture := decode(t, `{"data":[{"embedding":[0.1,0.2]}]}`)
		vector, ok := extractEmbedding(fixture)
		assert.True(t, ok)
		assert.Equal(t, []float64{0.1, 0.2}, vector)
	})

	t.Run("empty data", func(t *testing.T) {
		_, ok := extractEmbedding(&openai.CreateEmbeddingResponse{})
		assert.False(t, ok)
	})
}

func TestClient(t *testing.T) {
	t.Run("chat posts to /chat/completions with top-level controls", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi!"},"finish_reason":"stop"}]}`))
		}))
		defer srv.Close()

		c := New("sk-test", WithBaseURL(srv.URL))
		resp, err := c.ChatCompletion(context.Background(),
			[]ai.Message{{Role: ai.RoleUser, Content: "hi"}},
			ai.WithTemperature(0.4), ai.WithMaxTokens(32))
		require.NoError(t, err)

		assert.Equal(t, "/chat/completions", gotPath)
		assert.Equal(t, "gpt-3.5-turbo", gotBody["model"])
		assert.Equal(t, 0.4, gotBody["temperature"])
		assert.Equal(t, float64(32), gotBody["max_tokens"])
		assert.Equal(t, "hi!", resp.Text)
		assert.Equal(t, "stop", resp.FinishReason)
		assert.Equal(t, ai.ProviderOpenAI, resp.ServedBy)
	})

	t.Run("extras merge into the request body", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
		}))
		defer srv.Close()

		c := New("sk-test", WithBaseURL(srv.URL))
		_, err := c.ChatCompletion(context.Background(),
			[]ai.Message{{Role: ai.RoleUser, Content: "hi"}},
			ai.WithExtra("top_p", 0.9))
		require.NoError(t, err)
		assert.Equal(t, 0.9, gotBody["top_p"])
	})

	t.Run("text completion posts to /completions", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"text":"a poem","finish_reason":"stop"}]}`))
		}))
		defer srv.Close()

		c := New("sk-test", WithBaseURL(srv.URL))
		resp, err := c.TextCompletion(context.Background(), "write a poem")
		require.NoError(t, err)

		assert.Equal(t, "/completions", gotPath)
		assert.Equal(t, "gpt-3.5-turbo-instruct", gotBody["model"])
		assert.Equal(t, "write a poem", gotBody["prompt"])
		assert.Equal(t, "a poem", resp.Text)
	})

	t.Run("embedding posts to /embeddings", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":[{"embedding":[0.1,0.2]}]}`))
		}))
		defer srv.Close()

		c := New("sk-test", WithBaseURL(srv.URL))
		resp, err := c.CreateEmbedding(context.Background(), "hello")
		require.NoError(t, err)

		assert.Equal(t, "/embeddings", gotPath)
		assert.Equal(t, "text-embedding-ada-002", gotBody["model"])
		assert.Equal(t, []float64{0.1, 0.2}, resp.Vector)
		assert.Equal(t, ai.ProviderOpenAI, resp.ServedBy)
	})
}

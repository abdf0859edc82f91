package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/omnia-ai/omnia"
)

func TestPostJSON(t *testing.T) {
	t.Run("sends JSON body and bearer header", func(t *testing.T) {
		var gotAuth, gotContentType string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		c := New("secret", time.Second)
		resp, err := c.PostJSON(context.Background(), srv.URL, map[string]any{"model": "llama2"})
		require.NoError(t, err)

		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, map[string]any{"model": "llama2"}, gotBody)
		assert.Equal(t, map[string]any{"ok": true}, resp)
	})

	t.Run("omits authorization header without key", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := New("", time.Second)
		_, err := c.PostJSON(context.Background(), srv.URL, map[string]any{})
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("server error is transient", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := New("", time.Second)
		_, err := c.PostJSON(context.Background(), srv.URL, map[string]any{})
		require.Error(t, err)
		assert.True(t, ai.IsTransient(err))
		assert.Equal(t, http.StatusServiceUnavailable, ai.StatusCodeOf(err))
		assert.Contains(t, err.Error(), "overloaded")
	})

	t.Run("bad request is user input", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "missing model", http.StatusBadRequest)
		}))
		defer srv.Close()

		c := New("", time.Second)
		_, err := c.PostJSON(context.Background(), srv.URL, map[string]any{})
		require.Error(t, err)
		assert.True(t, ai.IsUserInput(err))
	})

	t.Run("unauthorized is permanent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad key", http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := New("", time.Second)
		_, err := c.PostJSON(context.Background(), srv.URL, map[string]any{})
		require.Error(t, err)
		assert.True(t, ai.IsPermanent(err))
	})

	t.Run("rate limit carries Retry-After", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := New("", time.Second)
		_, err := c.PostJSON(context.Background(), srv.URL, map[string]any{})
		require.Error(t, err)

		var ce ai.CategorizedError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 7*time.Second, ce.RetryAfter())
		assert.True(t, ai.IsTransient(err))
	})

	t.Run("network failure is transient", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		c := New("", time.Second)
		_, err := c.PostJSON(context.Background(), srv.URL, map[string]any{})
		require.Error(t, err)
		assert.True(t, ai.IsTransient(err))
		assert.Equal(t, 0, ai.StatusCodeOf(err))
	})

	t.Run("malformed response body fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := New("", time.Second)
		_, err := c.PostJSON(context.Background(), srv.URL, map[string]any{})
		require.Error(t, err)
		assert.True(t, ai.IsPermanent(err))
	})

	t.Run("honors context deadline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		c := New("", time.Minute)
		_, err := c.PostJSON(ctx, srv.URL, map[string]any{})
		require.Error(t, err)
	})
}

func TestGetJSON(t *testing.T) {
	t.Run("issues GET and decodes response", func(t *testing.T) {
		var gotMethod string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.Write([]byte(`{"models":[{"name":"llama2"}]}`))
		}))
		defer srv.Close()

		c := New("", time.Second)
		resp, err := c.GetJSON(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Contains(t, resp, "models")
	})
}

func TestNewWithHTTPClient(t *testing.T) {
	t.Run("nil client falls back to default", func(t *testing.T) {
		c := NewWithHTTPClient("key", nil)
		assert.NotNil(t, c)
	})
}

package omnia

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrEmptyInput(t *testing.T) {
	t.Run("is a sentinel error", func(t *testing.T) {
		assert.Error(t, ErrEmptyInput)
		assert.Equal(t, "empty input", ErrEmptyInput.Error())
	})

	t.Run("can be compared with errors.Is", func(t *testing.T) {
		err := ErrEmptyInput
		assert.True(t, errors.Is(err, ErrEmptyInput))
	})
}

func TestError(t *testing.T) {
	t.Run("Error includes cause when present", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewTransientError("POST https://api.example.com", 0, cause)
		assert.Equal(t, "POST https://api.example.com: connection refused", err.Error())
	})

	t.Run("Error without cause", func(t *testing.T) {
		err := NewPermanentError("bad credentials", 401, nil)
		assert.Equal(t, "bad credentials", err.Error())
	})

	t.Run("Unwrap returns underlying error", func(t *testing.T) {
		cause := errors.New("timeout")
		err := NewTransientError("request failed", 0, cause)
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("carries status code and retry delay", func(t *testing.T) {
		err := NewTransientErrorWithRetry("rate limited", 429, 5*time.Second, nil)
		assert.Equal(t, 429, err.StatusCode())
		assert.Equal(t, 5*time.Second, err.RetryAfter())
		assert.Equal(t, ErrorTransient, err.Category())
	})
}

func TestErrorCategoryHelpers(t *testing.T) {
	t.Run("IsTransient", func(t *testing.T) {
		assert.True(t, IsTransient(NewTransientError("overloaded", 503, nil)))
		assert.False(t, IsTransient(NewPermanentError("forbidden", 403, nil)))
		assert.False(t, IsTransient(errors.New("plain error")))
	})

	t.Run("IsPermanent", func(t *testing.T) {
		assert.True(t, IsPermanent(NewPermanentError("forbidden", 403, nil)))
		assert.False(t, IsPermanent(NewUserInputError("bad request", 400, nil)))
	})

	t.Run("IsUserInput", func(t *testing.T) {
		assert.True(t, IsUserInput(NewUserInputError("bad request", 400, nil)))
		assert.False(t, IsUserInput(NewTransientError("overloaded", 503, nil)))
	})

	t.Run("helpers see through wrapping", func(t *testing.T) {
		wrapped := &ProviderError{Provider: ProviderDeepSeek, Op: OpChat, Err: NewTransientError("overloaded", 503, nil)}
		assert.True(t, IsTransient(wrapped))
		assert.Equal(t, 503, StatusCodeOf(wrapped))
	})

	t.Run("StatusCodeOf on plain error", func(t *testing.T) {
		assert.Equal(t, 0, StatusCodeOf(errors.New("plain")))
	})
}

func TestProviderError(t *testing.T) {
	t.Run("Error names provider and operation", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &ProviderError{Provider: ProviderOllama, Op: OpEmbedding, Err: cause}
		assert.Equal(t, "ollama embedding call failed: connection refused", err.Error())
	})

	t.Run("Unwrap exposes the original cause", func(t *testing.T) {
		cause := NewTransientError("503", 503, nil)
		err := &ProviderError{Provider: ProviderOpenAI, Op: OpChat, Err: cause}

		assert.True(t, errors.Is(err, cause))

		var pe *ProviderError
		assert.True(t, errors.As(err, &pe))
		assert.Equal(t, ProviderOpenAI, pe.Provider)
	})
}

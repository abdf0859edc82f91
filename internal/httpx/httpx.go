// Package httpx is the JSON transport used by the REST provider adapters.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	ai "github.com/omnia-ai/omnia"
)

// DefaultTimeout bounds requests when the caller supplies no context
// deadline and no custom http.Client.
const DefaultTimeout = 2 * time.Minute

// Client issues JSON requests and decodes JSON responses. A non-2xx
// status or a network failure is returned as a categorized error.
type Client struct {
	http   *http.Client
	apiKey string
}

// New creates a transport. The API key, when non-empty, is sent as an
// Authorization Bearer header on every request.
func New(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		apiKey: apiKey,
	}
}

// NewWithHTTPClient creates a transport around a caller-supplied
// http.Client, which then owns timeout behavior.
func NewWithHTTPClient(apiKey string, hc *http.Client) *Client {
	if hc == nil {
		return New(apiKey, 0)
	}
	return &Client{http: hc, apiKey: apiKey}
}

// PostJSON sends the payload as a JSON body and returns the decoded
// response map.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, url, bytes.NewReader(body))
}

// GetJSON issues a GET and returns the decoded response map.
func (c *Client) GetJSON(ctx context.Context, url string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ai.NewTransientError(fmt.Sprintf("%s %s", method, url), 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(method, url, resp)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, ai.NewPermanentError(fmt.Sprintf("decode response from %s", url), resp.StatusCode, err)
	}
	return result, nil
}

// statusError converts a non-2xx response into a categorized error
// carrying the status code and a snippet of the body.
func statusError(method, url string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := fmt.Sprintf("%s %s: %s: %s", method, url, resp.Status, bytes.TrimSpace(snippet))
	code := resp.StatusCode

	if retryAfter := parseRetryAfter(resp); retryAfter > 0 {
		return ai.NewTransientErrorWithRetry(msg, code, retryAfter, nil)
	}

	switch categorizeStatusCode(code) {
	case ai.ErrorTransient:
		return ai.NewTransientError(msg, code, nil)
	case ai.ErrorUserInput:
		return ai.NewUserInputError(msg, code, nil)
	default:
		return ai.NewPermanentError(msg, code, nil)
	}
}

// categorizeStatusCode determines the error category from an HTTP status code.
func categorizeStatusCode(code int) ai.ErrorCategory {
	switch {
	case code == 429:
		return ai.ErrorTransient // Rate limited
	case code >= 500 && code < 600:
		return ai.ErrorTransient // Server error
	case code == 401 || code == 403:
		return ai.ErrorPermanent // Authentication/authorization
	case code == 400 || code == 404 || code == 422:
		return ai.ErrorUserInput // Bad request or not found
	default:
		return ai.ErrorPermanent // Default to permanent for unknown codes
	}
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is not present or cannot be parsed.
func parseRetryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	// Try parsing as seconds (most common)
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 7231)
	if t, err := http.ParseTime(header); err == nil {
		delay := time.Until(t)
		if delay > 0 {
			return delay
		}
	}

	return 0
}

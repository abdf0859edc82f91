package client

import (
	"time"

	ai "github.com/omnia-ai/omnia"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventRequestStart fires before an API request begins.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after an API request completes successfully.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when an API request fails and no fallback
	// is available.
	EventRequestError EventType = "request_error"

	// EventFallback fires when a failed request is served by the
	// offline stub instead.
	EventFallback EventType = "fallback"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Op identifies the logical operation.
	Op ai.Operation

	// Provider identifies the configured provider.
	Provider ai.Provider

	// Duration is the elapsed time for completed or failed requests.
	Duration time.Duration

	// Error contains the provider error for EventRequestError, and the
	// suppressed original error for EventFallback.
	Error error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}

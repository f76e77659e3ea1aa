// Package llm wraps the single outbound call to the hosted model-serving
// endpoint. It defines a provider-agnostic completion interface with a
// Databricks-backed implementation and a deterministic mock for testing.
// The call is fire-once: no retries, no backoff; every failure surfaces
// immediately as one of the typed errors below.
package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the token or endpoint URL was missing or
	// empty at call time.
	ErrConfiguration = errors.New("completion client not configured")

	// ErrTimeout means the request exceeded the configured deadline.
	ErrTimeout = errors.New("completion request timed out")

	// ErrMalformedResponse means the endpoint replied 2xx but the body
	// was not a recognizable completion envelope, or the extracted text
	// was empty.
	ErrMalformedResponse = errors.New("malformed completion response")
)

// UpstreamError reports a non-2xx status from the serving endpoint.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model serving endpoint returned HTTP %d", e.StatusCode)
}

// CompletionClient performs one call to a model-serving endpoint.
// Implementations must be stateless and safe for concurrent use.
type CompletionClient interface {
	// Complete sends the prompt and returns the raw completion text.
	// The returned text is never empty on a nil error.
	Complete(ctx context.Context, prompt string) (string, error)
}

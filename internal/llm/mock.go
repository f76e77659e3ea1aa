package llm

import "context"

// MockClient is a deterministic CompletionClient for testing.
type MockClient struct {
	// Response is the fixed completion text returned by Complete.
	Response string

	// Err, if set, is returned by Complete instead of a response.
	Err error

	// Calls counts invocations; LastPrompt stores the most recent prompt.
	Calls      int
	LastPrompt string
}

// NewMockClient creates a mock returning the given completion text.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// NewMockClientWithError creates a mock that always fails with err.
func NewMockClientWithError(err error) *MockClient {
	return &MockClient{Err: err}
}

func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

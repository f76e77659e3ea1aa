package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/excuselab/excusegen/internal/config"
	"github.com/excuselab/excusegen/internal/metrics"
)

// DatabricksClient implements CompletionClient against a Databricks
// model-serving invocations URL with bearer-token auth.
type DatabricksClient struct {
	cfg        config.LLMConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewDatabricksClient creates a client for the configured serving endpoint.
// A missing token or URL is not an error here: it is reported per call so
// the process can boot in degraded mode with health endpoints up.
func NewDatabricksClient(cfg config.LLMConfig, logger *zap.Logger) *DatabricksClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DatabricksClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// chatMessage is one entry in the chat-completions payload.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Model       string        `json:"model,omitempty"`
}

// completionEnvelope covers the response shapes serving endpoints are known
// to produce: OpenAI-style choices, plain predictions, and candidates.
type completionEnvelope struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Predictions []string `json:"predictions"`
	Candidates  []struct {
		Content string `json:"content"`
	} `json:"candidates"`
}

// Complete performs the single outbound call and returns the raw completion
// text. Failures map onto the package error kinds; nothing is retried.
func (c *DatabricksClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := c.complete(ctx, prompt)
	metrics.RecordCompletionLatency(statusLabel(err), time.Since(start))
	return text, err
}

func (c *DatabricksClient) complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Token == "" {
		return "", fmt.Errorf("%w: DATABRICKS_API_TOKEN is not set", ErrConfiguration)
	}
	if c.cfg.EndpointURL == "" {
		return "", fmt.Errorf("%w: DATABRICKS_ENDPOINT_URL is not set", ErrConfiguration)
	}

	payload := completionRequest{
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		Model:       c.cfg.Model,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	c.logger.Info("calling model serving endpoint",
		zap.String("endpoint", c.cfg.EndpointURL),
		zap.Int("prompt_len", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.httpClient.Timeout)
		}
		return "", fmt.Errorf("call model serving endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the log, never for the caller.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("model serving endpoint error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return "", &UpstreamError{StatusCode: resp.StatusCode}
	}

	var envelope completionEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	text := extractText(envelope)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no completion text in envelope", ErrMalformedResponse)
	}
	return text, nil
}

// extractText pulls the completion text out of whichever envelope field is
// populated, in order of preference.
func extractText(env completionEnvelope) string {
	if len(env.Choices) > 0 {
		return decodeContent(env.Choices[0].Message.Content)
	}
	if len(env.Predictions) > 0 {
		return env.Predictions[0]
	}
	if len(env.Candidates) > 0 {
		return env.Candidates[0].Content
	}
	return ""
}

// decodeContent handles the two content shapes chat endpoints emit: a plain
// string, or a list of typed parts where the text lives in a "text" part.
func decodeContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &parts); err == nil {
		for _, p := range parts {
			if p.Type == "text" && p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrConfiguration):
		return "config_error"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	default:
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return "upstream_error"
		}
		return "network_error"
	}
}

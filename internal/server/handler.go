package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/excuselab/excusegen/internal/config"
	"github.com/excuselab/excusegen/internal/excuse"
	"github.com/excuselab/excusegen/internal/llm"
	"github.com/excuselab/excusegen/internal/metrics"
)

const version = "1.0.0"

// ExcuseHandler serves the generation endpoint. Each request runs the full
// flow: validate, build prompt, call the completion client once, normalize.
type ExcuseHandler struct {
	client llm.CompletionClient
	logger *zap.Logger
}

func NewExcuseHandler(client llm.CompletionClient, logger *zap.Logger) *ExcuseHandler {
	return &ExcuseHandler{client: client, logger: logger}
}

// Generate handles POST /api/generate-excuse. Invalid input is rejected with
// 400; every post-validation failure is converted into a structurally valid
// response with success=false and HTTP 200, so the wire contract holds
// regardless of backend failure mode.
func (h *ExcuseHandler) Generate(c *gin.Context) {
	var req excuse.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncrementExcuseGenerated("validation_error")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		metrics.IncrementExcuseGenerated("validation_error")
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	prompt := excuse.BuildPrompt(req)

	completion, err := h.client.Complete(c.Request.Context(), prompt)
	if err != nil {
		outcome, message := classifyFailure(err)
		h.logger.Warn("excuse generation failed",
			zap.String("outcome", outcome),
			zap.Error(err))
		metrics.IncrementExcuseGenerated(outcome)
		c.JSON(http.StatusOK, excuse.FailureResponse(message))
		return
	}
	if strings.TrimSpace(completion) == "" {
		metrics.IncrementExcuseGenerated("malformed")
		c.JSON(http.StatusOK, excuse.FailureResponse("LLM service returned an empty response"))
		return
	}

	subject, body := excuse.Normalize(completion, req)
	metrics.IncrementExcuseGenerated("success")
	c.JSON(http.StatusOK, excuse.SuccessResponse(subject, body))
}

// classifyFailure maps a completion client error onto a metrics outcome and
// a user-facing message. Messages never carry credentials or upstream body
// content.
func classifyFailure(err error) (outcome, message string) {
	var upstream *llm.UpstreamError
	switch {
	case errors.Is(err, llm.ErrConfiguration):
		return "config_error", "LLM service not configured: set DATABRICKS_API_TOKEN and DATABRICKS_ENDPOINT_URL"
	case errors.Is(err, llm.ErrTimeout):
		return "timeout", "request to the LLM service timed out"
	case errors.Is(err, llm.ErrMalformedResponse):
		return "malformed", "LLM service returned an unreadable response"
	case errors.As(err, &upstream):
		return "upstream_error", fmt.Sprintf("LLM service error: HTTP %d", upstream.StatusCode)
	default:
		return "network_error", "could not reach the LLM service"
	}
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
	})
}

// Healthz handles GET /healthz.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /ready.
func Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Ping handles GET /ping.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Debug returns non-sensitive configuration diagnostics. The bearer token is
// always masked.
func Debug(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		cwd, _ := os.Getwd()
		c.JSON(http.StatusOK, gin.H{
			"environment": gin.H{
				"DATABRICKS_ENDPOINT_URL": cfg.LLM.EndpointURL,
				"DATABRICKS_API_TOKEN":    cfg.LLM.MaskedToken(),
				"HOST":                    cfg.Server.Host,
				"PORT":                    cfg.Server.Port,
				"LLM_MODEL_NAME":          cfg.LLM.Model,
				"LLM_TIMEOUT":             cfg.LLM.Timeout.String(),
			},
			"paths": gin.H{
				"current_dir": cwd,
				"public_dir":  resolvePublicDir(),
			},
		})
	}
}

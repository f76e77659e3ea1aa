// Package server wires the HTTP surface: the generation endpoint, liveness
// probes, metrics, diagnostics and the bundled single-page UI.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/excuselab/excusegen/internal/config"
	"github.com/excuselab/excusegen/internal/llm"
)

// Server owns the gin engine and the underlying http.Server.
type Server struct {
	Engine *gin.Engine

	cfg    config.Config
	logger *zap.Logger
}

// New builds the engine with all routes registered.
func New(cfg config.Config, client llm.CompletionClient, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(CORS())

	excuseHandler := NewExcuseHandler(client, logger)
	r.POST("/api/generate-excuse", excuseHandler.Generate)

	// Probes stay up even when the completion client is unconfigured.
	r.GET("/health", Health)
	r.HEAD("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/healthz", Healthz)
	r.HEAD("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ready", Ready)
	r.GET("/ping", Ping)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/debug", Debug(cfg))

	r.GET("/", Index)
	if dir := resolvePublicDir(); dir != "" {
		r.Static("/static", dir)
	}

	return &Server{Engine: r, cfg: cfg, logger: logger}
}

// Run serves until ctx is cancelled, then shuts down gracefully with a
// 10 second drain window.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr(),
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

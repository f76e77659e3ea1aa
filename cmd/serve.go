package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/excuselab/excusegen/internal/config"
	"github.com/excuselab/excusegen/internal/llm"
	"github.com/excuselab/excusegen/internal/server"
)

var (
	configFile string
	host       string
	port       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the excuse email web server",
	Long: `Start the HTTP server that serves the excuse email UI and API.

Configuration is read from an optional YAML file and the environment:

  DATABRICKS_API_TOKEN     - bearer token for the serving endpoint
  DATABRICKS_ENDPOINT_URL  - full invocations URL of the serving endpoint
  HOST, PORT               - bind address (defaults 0.0.0.0:8000)

A missing token does not prevent startup: the generation endpoint degrades
to configuration-error responses while health endpoints stay up.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	serveCmd.Flags().StringVar(&host, "host", "", "Bind host (overrides HOST)")
	serveCmd.Flags().StringVar(&port, "port", "", "Bind port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port != "" {
		cfg.Server.Port = port
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.LLM.Token == "" {
		logger.Warn("DATABRICKS_API_TOKEN is not set; generation will return configuration errors")
	}

	client := llm.NewDatabricksClient(cfg.LLM, logger)
	srv := server.New(cfg, client, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

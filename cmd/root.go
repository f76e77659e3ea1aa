package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "excusegen",
	Short: "Excusegen - Excuse email draft tool",
	Long: `Excusegen serves a small web application that drafts excuse emails.

A form-driven UI collects category, tone, seriousness, names and timing,
and the backend relays them as a prompt to a hosted model-serving
endpoint, returning a generated subject and body.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

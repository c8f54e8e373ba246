// Package main provides the browsermcp server binary: an MCP server that
// exposes browser automation tools backed by a remote browserless
// deployment over the WebDriver protocol.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/entrhq/browsermcp/pkg/config"
	"github.com/entrhq/browsermcp/pkg/logging"
	"github.com/entrhq/browsermcp/pkg/server"
)

const version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "browsermcp",
	Short: "MCP server for browser automation via a remote browserless backend",
	Long: `browsermcp exposes browser automation tools (navigate, find element,
click, execute JavaScript, screenshot, page info) over the Model Context
Protocol, delegating browser control to a browserless deployment reached
over the WebDriver wire protocol.

Configuration comes from the environment: BROWSERLESS_URL is required,
BROWSERLESS_TOKEN optionally authenticates against the backend.`,
	SilenceUsage: true,
	RunE:         run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the browsermcp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("browsermcp v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logErr := logging.NewLogger("main")
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", logErr)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("Starting browsermcp v%s, backend %s", version, cfg.BackendURL)
	return server.New(cfg, logger).Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

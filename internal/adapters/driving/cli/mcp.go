package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discreta/internal/adapters/driving/mcp"
	"github.com/custodia-labs/discreta/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead. HTTP requests are rate limited
by the mcp.rate_per_second and mcp.burst settings, which are reloaded when
the config file changes.

Examples:
  # Stdio mode (default, for Claude Desktop)
  discreta mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  discreta mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "discreta": {
        "command": "/path/to/discreta",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Calculator: calculatorService,
		History:    historyService,
		Settings:   settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if port > 0 {
		watchRateLimit(ctx, server)
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// watchRateLimit applies rate limit changes from the config file to server.
func watchRateLimit(ctx context.Context, server *mcp.Server) {
	if configWatcher == nil || settingsService == nil {
		return
	}
	err := configWatcher.Watch(ctx, func() {
		settings, err := settingsService.Get()
		if err != nil {
			logger.Warn("Ignoring config change: %v", err)
			return
		}
		server.SetRateLimit(settings.MCP.RatePerSecond, settings.MCP.Burst)
	})
	if err != nil {
		logger.Warn("Config watch unavailable: %v", err)
	}
}

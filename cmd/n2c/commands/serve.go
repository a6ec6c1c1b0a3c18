package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flashpoint493/NodeToCode-sub000/ai/provider"
	"github.com/flashpoint493/NodeToCode-sub000/config"
	"github.com/flashpoint493/NodeToCode-sub000/ir"
	"github.com/flashpoint493/NodeToCode-sub000/logger"
	"github.com/flashpoint493/NodeToCode-sub000/mcp"
)

var serveSnapshotPath string

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Start the Model Context Protocol server on stdin/stdout.

The server exposes blueprint translation tools to MCP clients. With
--snapshot, a blueprint snapshot file acts as the focused blueprint;
without it the server starts empty and tools report that no blueprint
is loaded.

All logging goes to stderr; stdout carries only JSON-RPC frames.`,
	RunE: runServe,
}

func init() {
	ServeCmd.Flags().StringVar(&serveSnapshotPath, "snapshot", "", "Blueprint snapshot file to serve as the focused blueprint")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var host mcp.Host
	if serveSnapshotPath != "" {
		data, err := os.ReadFile(serveSnapshotPath)
		if err != nil {
			return fmt.Errorf("failed to read snapshot %s: %w", serveSnapshotPath, err)
		}
		snapHost, err := mcp.LoadSnapshotHost(data)
		if err != nil {
			return fmt.Errorf("failed to parse snapshot %s: %w", serveSnapshotPath, err)
		}
		host = snapHost
		logger.Infow("serving blueprint snapshot",
			logger.FieldComponent, "serve",
			"path", serveSnapshotPath,
		)
	} else {
		host = mcp.NewSnapshotHost(nil, ir.Metadata{})
	}

	ai, err := provider.NewAIClient(cfg, logger.ComponentLogger("ai"))
	if err != nil {
		// Translation tools still work without a provider; only code
		// synthesis is unavailable
		logger.Warnw("no LLM provider available",
			logger.FieldComponent, "serve",
			logger.FieldError, err.Error(),
		)
		ai = nil
	}

	return mcp.NewServer(host, ai, cfg).Serve()
}

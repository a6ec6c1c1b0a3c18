package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flashpoint493/NodeToCode-sub000/cmd/n2c/commands"
	"github.com/flashpoint493/NodeToCode-sub000/logger"
)

var rootCmd = &cobra.Command{
	Use:   "n2c",
	Short: "NodeToCode - Blueprint graph translation tools",
	Long: `NodeToCode translates visual Blueprint node graphs into a canonical
JSON representation and, through an LLM provider, into source code.

Available commands:
  serve     - Start the MCP server over stdio
  translate - Translate a blueprint snapshot file to graph JSON
  config    - Manage NodeToCode configuration
  version   - Show version information

Examples:
  n2c serve --snapshot door.json      # Serve MCP tools for a snapshot
  n2c translate door.json             # Emit the graph JSON
  n2c config show                     # Show current configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Logging goes to stderr so it never mixes with JSON on stdout;
		// plain-output commands still skip it entirely
		if cmd.Name() != "show" && cmd.Name() != "get" && cmd.Name() != "version" {
			if err := logger.Initialize(false); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.TranslateCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

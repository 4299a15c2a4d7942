package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/config"
	"github.com/aretw0/automat/pkg/adapters/mcp"
)

// mcpCmd exposes the machine catalog to MCP clients on stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp [machine.yaml]...",
	Short: "Serve the machine catalog over MCP (stdio)",
	Long: `Starts an MCP server on stdin/stdout exposing process_sequence,
inspect_machine and list_machines tools. The store backend follows the
same environment configuration as serve; definition files given as
arguments are loaded into the store first.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fatal(err)
		}

		store, err := buildStore(cfg)
		if err != nil {
			fatal(err)
		}
		if err := preload(context.Background(), store, args); err != nil {
			fatal(err)
		}

		if err := mcp.NewServer(store).ServeStdio(); err != nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

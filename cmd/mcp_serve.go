package cmd

import (
	"interview-cli/internal/mcp"

	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run an MCP server exposing the formatters and session history",
	Long: `Start a Model Context Protocol server on stdio. The server exposes the
answer formatters (format_solution, format_debug) and the session history
(search_history, get_snippet) as tools for MCP clients.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := mcp.Serve(); err != nil {
			fail("MCP server error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

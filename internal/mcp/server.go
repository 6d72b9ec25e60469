// Package mcp exposes the answer formatters and the session history to MCP
// clients over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewInterviewMCPServer creates an MCP server with the formatter and
// history tools registered.
func NewInterviewMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"interview-cli",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerFormatSolutionTool(s)
	registerFormatDebugTool(s)
	registerSearchHistoryTool(s)
	registerGetSnippetTool(s)

	return s
}

// Serve starts the MCP server using stdio transport.
func Serve() error {
	s := NewInterviewMCPServer()
	return server.ServeStdio(s)
}

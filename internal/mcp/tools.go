package mcp

import (
	"context"
	"encoding/json"

	"interview-cli/internal/response"
	"interview-cli/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerFormatSolutionTool adds the format_solution tool to the server.
func registerFormatSolutionTool(s *server.MCPServer) {
	tool := mcp.NewTool("format_solution",
		mcp.WithDescription("Parse a raw solution-mode LLM answer into structured code, thoughts and complexity fields. Never fails; missing sections get defaults."),
		mcp.WithString("raw",
			mcp.Required(),
			mcp.Description("The raw answer text to parse"),
		),
	)

	s.AddTool(tool, formatSolutionHandler)
}

func formatSolutionHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	raw := ""
	if r, ok := args["raw"].(string); ok {
		raw = r
	}

	result, _ := json.MarshalIndent(response.FormatSolution(raw), "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

// registerFormatDebugTool adds the format_debug tool to the server.
func registerFormatDebugTool(s *server.MCPServer) {
	tool := mcp.NewTool("format_debug",
		mcp.WithDescription("Parse a raw debug-mode LLM answer into issues, fixes, why and verification sections. Never fails; missing sections get defaults."),
		mcp.WithString("raw",
			mcp.Required(),
			mcp.Description("The raw answer text to parse"),
		),
	)

	s.AddTool(tool, formatDebugHandler)
}

func formatDebugHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	raw := ""
	if r, ok := args["raw"].(string); ok {
		raw = r
	}

	result, _ := json.MarshalIndent(response.FormatDebug(raw), "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

// registerSearchHistoryTool adds the search_history tool to the server.
func registerSearchHistoryTool(s *server.MCPServer) {
	tool := mcp.NewTool("search_history",
		mcp.WithDescription("Search saved interview snippets by question, answer or tag. Returns the matching records with their workspace snapshots."),
		mcp.WithString("query",
			mcp.Description("Search text; empty returns the most recent snippets"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 20)"),
		),
	)

	s.AddTool(tool, searchHistoryHandler)
}

func searchHistoryHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	limit := 20
	if l, ok := args["limit"].(float64); ok {
		limit = int(l)
	}

	db, err := session.InitDB()
	if err != nil {
		return mcp.NewToolResultError("failed to open database: " + err.Error()), nil
	}
	defer db.Close()

	var items []session.Snippet
	if query != "" {
		items, err = session.SearchSnippets(db, query)
		if len(items) > limit {
			items = items[:limit]
		}
	} else {
		items, err = session.GetRecent(db, limit)
	}
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

// registerGetSnippetTool adds the get_snippet tool to the server.
func registerGetSnippetTool(s *server.MCPServer) {
	tool := mcp.NewTool("get_snippet",
		mcp.WithDescription("Fetch one saved snippet by id (prefixes accepted) together with its restored workspace."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Snippet id or id prefix"),
		),
	)

	s.AddTool(tool, getSnippetHandler)
}

func getSnippetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	id := ""
	if v, ok := args["id"].(string); ok {
		id = v
	}

	db, err := session.InitDB()
	if err != nil {
		return mcp.NewToolResultError("failed to open database: " + err.Error()), nil
	}
	defer db.Close()

	snippet, err := session.GetByID(db, id)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if snippet == nil {
		return mcp.NewToolResultError("snippet not found: " + id), nil
	}

	result := map[string]interface{}{
		"snippet":  snippet,
		"restored": session.Restore(*snippet),
	}
	jsonResult, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonResult)), nil
}

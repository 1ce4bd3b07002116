// Package mcp provides a Model Context Protocol server for postgraph.
// It exposes post-graph rendering and activity stats as read-only MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shoesandsocks/postgraph/internal/config"
	"github.com/shoesandsocks/postgraph/internal/content"
)

// NewServer creates an MCP server with all postgraph tools registered.
// defaults supplies the source and options a tool call does not set.
func NewServer(version string, defaults *config.File, loader *content.Loader) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "postgraph",
		Version: version,
	}, nil)
	registerTools(server, defaults, loader)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all postgraph tools to the server.
func registerTools(server *mcp.Server, defaults *config.File, loader *content.Loader) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_post_graph",
		Description: "Render the post-activity calendar as an inline HTML fragment (style block plus one grid per year) for a content directory, posts file, or data file.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(defaults, loader))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "post_activity",
		Description: "Summarize posting activity per year: total posts, days with at least one post, and calendar layout.",
		Annotations: readOnlyAnnotations(),
	}, handleActivity(defaults, loader))
}

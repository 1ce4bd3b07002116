package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/content"
	postgraphmcp "github.com/shoesandsocks/postgraph/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run postgraph as a Model Context Protocol (MCP) server over stdio.

This exposes post-graph rendering as MCP tools that any MCP-capable agent
environment can use. The config file supplies the default source and options;
each tool call may override them.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "postgraph": {
        "command": "postgraph",
        "args": ["serve"]
      }
    }
  }

Available tools: render_post_graph, post_activity`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd)
			file, err := loadConfig(cmd, logger)
			if err != nil {
				return err
			}
			server := postgraphmcp.NewServer(buildVersion(), file, content.NewLoader(logger))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

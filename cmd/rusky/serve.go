package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/rusky/internal/config"
	"github.com/gorewood/rusky/internal/git"
	"github.com/gorewood/rusky/internal/output"
	ruskymcp "github.com/gorewood/rusky/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run rusky as a Model Context Protocol (MCP) server over stdio.

Agents can inspect the repository's hook setup and read or edit hook files
without shelling out. Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "rusky": {
        "command": "rusky",
        "args": ["serve"]
      }
    }
  }

Available tools: status, show, set, add`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return output.NewErrorWithCause("failed to load config", err)
			}
			server := ruskymcp.NewServer(buildVersion(), git.New(settings.GitBin, ""), settings.HooksDir)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

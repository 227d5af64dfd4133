// Package mcp provides a Model Context Protocol server for rusky.
// It lets MCP-capable agents inspect the hook setup and edit hook files.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/rusky/internal/setup"
)

// NewServer creates an MCP server with all rusky tools registered.
// dir is the managed root used when a tool call does not name one.
func NewServer(version string, vcs setup.VCS, dir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rusky",
		Version: version,
	}, nil)
	registerTools(server, &tools{vcs: vcs, dir: dir})
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

// writeAnnotations returns annotations for tools that edit hook files.
func writeAnnotations(idempotent bool) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(idempotent),
		IdempotentHint:  idempotent,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all rusky tools to the server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show how git hooks are wired: core.hooksPath, whether it points at the rusky directory, stub health, and which hooks have a command file.",
		Annotations: readOnlyAnnotations(),
	}, t.handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show",
		Description: "Read the command file of one hook (e.g. pre-commit). Returns exists=false when the hook has no command.",
		Annotations: readOnlyAnnotations(),
	}, t.handleShow)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set",
		Description: "Replace the command file of one hook with the given shell text. Creates the file if needed.",
		Annotations: writeAnnotations(true),
	}, t.handleSet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add",
		Description: "Append shell text to an existing hook command file. The text is appended verbatim; start it with a newline to add a new line.",
		Annotations: writeAnnotations(false),
	}, t.handleAdd)
}

package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/rusky/internal/setup"
)

// tools holds what every handler needs.
type tools struct {
	vcs setup.VCS
	dir string
}

// dirOr returns the requested managed root or the server default.
func (t *tools) dirOr(dir string) string {
	if dir != "" {
		return dir
	}
	return t.dir
}

// hookPath resolves a hook name to its command file.
func (t *tools) hookPath(ctx context.Context, hook, dir string) (setup.Event, string, error) {
	event, err := setup.ParseEvent(hook)
	if err != nil {
		return "", "", err
	}
	root, err := t.vcs.RepoRoot(ctx)
	if err != nil {
		return "", "", fmt.Errorf("getting repo root: %w", err)
	}
	return event, setup.CommandPath(root, t.dirOr(dir), event), nil
}

// --- Status tool ---

// StatusInput is the input for the status tool.
type StatusInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"managed hooks directory relative to the repo root (default .rusky)"`
}

// HookSummary is the state of one hook.
type HookSummary struct {
	Hook       string `json:"hook"        jsonschema:"hook name"`
	Stub       string `json:"stub"        jsonschema:"stub state: ok, modified, or missing"`
	HasCommand bool   `json:"has_command" jsonschema:"whether the hook has a command file"`
}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	RepoRoot          string        `json:"repo_root"           jsonschema:"repository top-level directory"`
	HooksPath         string        `json:"hooks_path"          jsonschema:"current core.hooksPath, empty when unset"`
	ExpectedHooksPath string        `json:"expected_hooks_path" jsonschema:"core.hooksPath value rusky install would set"`
	Installed         bool          `json:"installed"           jsonschema:"core.hooksPath points at an intact rusky directory"`
	Bound             bool          `json:"bound"               jsonschema:"core.hooksPath points at the rusky directory"`
	Hooks             []HookSummary `json:"hooks"               jsonschema:"per-hook state"`
}

func (t *tools) handleStatus(ctx context.Context, _ *mcp.CallToolRequest, input StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
	status, err := setup.Inspect(ctx, t.vcs, t.dirOr(input.Dir))
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("inspecting hooks: %w", err)
	}

	out := StatusOutput{
		RepoRoot:          status.RepoRoot,
		HooksPath:         status.HooksPath,
		ExpectedHooksPath: status.ExpectedHooksPath,
		Installed:         status.Healthy(),
		Bound:             status.Bound,
		Hooks:             make([]HookSummary, 0, len(status.Hooks)),
	}
	for _, hook := range status.Hooks {
		out.Hooks = append(out.Hooks, HookSummary{
			Hook:       hook.Event.String(),
			Stub:       hook.Stub,
			HasCommand: hook.HasCommand,
		})
	}
	return nil, out, nil
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	Hook string `json:"hook"          jsonschema:"hook name, e.g. pre-commit"`
	Dir  string `json:"dir,omitempty" jsonschema:"managed hooks directory relative to the repo root (default .rusky)"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Hook    string `json:"hook"    jsonschema:"hook name"`
	Path    string `json:"path"    jsonschema:"command file path"`
	Exists  bool   `json:"exists"  jsonschema:"whether the command file exists"`
	Content string `json:"content" jsonschema:"command file content"`
}

func (t *tools) handleShow(ctx context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
	event, path, err := t.hookPath(ctx, input.Hook, input.Dir)
	if err != nil {
		return nil, ShowOutput{}, err
	}

	out := ShowOutput{Hook: event.String(), Path: path}
	content, err := setup.ReadCommand(path)
	switch {
	case errors.Is(err, setup.ErrHookNotFound):
		return nil, out, nil
	case err != nil:
		return nil, ShowOutput{}, err
	}
	out.Exists = true
	out.Content = content
	return nil, out, nil
}

// --- Set and add tools ---

// EditInput is the input for the set and add tools.
type EditInput struct {
	Hook    string `json:"hook"          jsonschema:"hook name, e.g. pre-commit"`
	Command string `json:"command"       jsonschema:"shell text to write"`
	Dir     string `json:"dir,omitempty" jsonschema:"managed hooks directory relative to the repo root (default .rusky)"`
}

// EditOutput is the output for the set and add tools.
type EditOutput struct {
	Hook    string `json:"hook"    jsonschema:"hook name"`
	Path    string `json:"path"    jsonschema:"command file path"`
	Content string `json:"content" jsonschema:"command file content after the edit"`
}

func (t *tools) handleSet(ctx context.Context, _ *mcp.CallToolRequest, input EditInput) (*mcp.CallToolResult, EditOutput, error) {
	return t.edit(ctx, input, setup.SetCommand)
}

func (t *tools) handleAdd(ctx context.Context, _ *mcp.CallToolRequest, input EditInput) (*mcp.CallToolResult, EditOutput, error) {
	return t.edit(ctx, input, setup.AddCommand)
}

func (t *tools) edit(
	ctx context.Context, input EditInput, apply func(path, command string) error,
) (*mcp.CallToolResult, EditOutput, error) {
	if input.Command == "" {
		return nil, EditOutput{}, errors.New("command is required")
	}
	event, path, err := t.hookPath(ctx, input.Hook, input.Dir)
	if err != nil {
		return nil, EditOutput{}, err
	}
	if err := apply(path, input.Command); err != nil {
		return nil, EditOutput{}, err
	}
	content, err := setup.ReadCommand(path)
	if err != nil {
		return nil, EditOutput{}, err
	}
	return nil, EditOutput{Hook: event.String(), Path: path, Content: content}, nil
}

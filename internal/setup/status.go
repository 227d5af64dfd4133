package setup

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gorewood/rusky/internal/config"
)

// HookState is the on-disk state of one event.
type HookState struct {
	Event Event `json:"event"`
	// Stub is "ok", "modified", or "missing".
	Stub string `json:"stub"`
	// HasCommand is true when the user hook file <root>/<event> exists.
	HasCommand bool `json:"has_command"`
}

// Status describes how a repository's hooks are wired.
type Status struct {
	RepoRoot          string      `json:"repo_root"`
	Dir               string      `json:"dir"`
	HooksPath         string      `json:"hooks_path"`
	ExpectedHooksPath string      `json:"expected_hooks_path"`
	Bound             bool        `json:"bound"`
	DispatcherPresent bool        `json:"dispatcher_present"`
	IgnorePresent     bool        `json:"ignore_present"`
	Hooks             []HookState `json:"hooks"`
}

// Healthy reports whether git is bound to an intact managed directory.
func (s *Status) Healthy() bool {
	if !s.Bound || !s.DispatcherPresent {
		return false
	}
	for _, hook := range s.Hooks {
		if hook.Stub != "ok" {
			return false
		}
	}
	return true
}

// Inspect gathers the Status of the managed root dir. It only reads.
func Inspect(ctx context.Context, vcs VCS, dir string) (*Status, error) {
	if dir == "" {
		dir = config.DefaultHooksDir
	}

	repoRoot, err := vcs.RepoRoot(ctx)
	if err != nil {
		return nil, err
	}
	hooksPath, err := vcs.HooksPath(ctx)
	if err != nil {
		return nil, err
	}

	root := resolveRoot(repoRoot, dir)
	hookDir := InternalPath(root)
	status := &Status{
		RepoRoot:          repoRoot,
		Dir:               dir,
		HooksPath:         hooksPath,
		ExpectedHooksPath: HooksPathValue(dir),
		DispatcherPresent: fileExists(filepath.Join(hookDir, DispatcherName)),
		IgnorePresent:     fileExists(filepath.Join(hookDir, IgnoreName)),
		Hooks:             make([]HookState, 0, len(events)),
	}
	status.Bound = hooksPath != "" && samePath(repoRoot, hooksPath, hookDir)

	for _, event := range events {
		status.Hooks = append(status.Hooks, HookState{
			Event:      event,
			Stub:       stubState(filepath.Join(hookDir, event.String())),
			HasCommand: fileExists(filepath.Join(root, event.String())),
		})
	}
	return status, nil
}

// samePath compares a core.hooksPath value, which git resolves against the
// repository root when relative, with an absolute directory.
func samePath(repoRoot, hooksPath, dir string) bool {
	if !filepath.IsAbs(hooksPath) {
		hooksPath = filepath.Join(repoRoot, hooksPath)
	}
	return filepath.Clean(hooksPath) == filepath.Clean(dir)
}

func stubState(path string) string {
	content, err := os.ReadFile(path) //nolint:gosec // path inside the managed directory
	if err != nil {
		return "missing"
	}
	info, err := os.Stat(path)
	if err != nil || string(content) != StubContent || info.Mode().Perm()&0o111 == 0 {
		return "modified"
	}
	return "ok"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

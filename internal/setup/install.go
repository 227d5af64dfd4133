package setup

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gorewood/rusky/internal/config"
	"github.com/gorewood/rusky/internal/log"
)

// VCS is the subset of the git client the install protocol needs.
// *git.Client satisfies it.
type VCS interface {
	CheckAvailable(ctx context.Context) error
	RepoRoot(ctx context.Context) (string, error)
	SetHooksPath(ctx context.Context, value string) error
	UnsetHooksPath(ctx context.Context) error
	HooksPath(ctx context.Context) (string, error)
}

// InstallOptions controls Install.
type InstallOptions struct {
	// Dir is the managed root, absolute or relative to the repository root.
	// Empty means config.DefaultHooksDir.
	Dir string
	// Skip makes Install a no-op (RUSKY=0).
	Skip bool
}

// InstallResult describes a completed install.
type InstallResult struct {
	Skipped   bool
	RepoRoot  string
	HookDir   string
	HooksPath string
	Events    []Event
}

// HooksPathValue returns the core.hooksPath value for a managed root as the
// user wrote it, so relative roots stay relative in the repository config.
func HooksPathValue(dir string) string {
	dir = filepath.ToSlash(dir)
	if trimmed := strings.TrimRight(dir, "/"); trimmed != "" {
		dir = trimmed
	}
	if dir == "/" {
		return "/" + InternalDir
	}
	return dir + "/" + InternalDir
}

// resolveRoot places a relative managed root under the repository root.
func resolveRoot(repoRoot, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(repoRoot, dir)
}

// Install runs the install protocol: check git, resolve the repository,
// write the managed directory, then bind core.hooksPath to it. The steps
// run in order and the first failure is returned. With opts.Skip set
// nothing is touched.
func Install(ctx context.Context, vcs VCS, opts InstallOptions) (*InstallResult, error) {
	if opts.Skip {
		log.FromContext(ctx).Debugf("install skipped")
		return &InstallResult{Skipped: true}, nil
	}

	if opts.Dir == "" {
		opts.Dir = config.DefaultHooksDir
	}

	if err := vcs.CheckAvailable(ctx); err != nil {
		return nil, err
	}

	repoRoot, err := vcs.RepoRoot(ctx)
	if err != nil {
		return nil, err
	}

	hookDir, err := WriteHookDir(ctx, resolveRoot(repoRoot, opts.Dir))
	if err != nil {
		return nil, err
	}

	hooksPath := HooksPathValue(opts.Dir)
	if err := vcs.SetHooksPath(ctx, hooksPath); err != nil {
		return nil, err
	}

	return &InstallResult{
		RepoRoot:  repoRoot,
		HookDir:   hookDir,
		HooksPath: hooksPath,
		Events:    Events(),
	}, nil
}

// Uninstall unbinds core.hooksPath. The managed directory and any user hook
// commands are left on disk; without the setting git no longer reads them.
func Uninstall(ctx context.Context, vcs VCS) error {
	if err := vcs.CheckAvailable(ctx); err != nil {
		return err
	}
	return vcs.UnsetHooksPath(ctx)
}

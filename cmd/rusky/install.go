package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/rusky/internal/config"
	"github.com/gorewood/rusky/internal/git"
	"github.com/gorewood/rusky/internal/output"
	"github.com/gorewood/rusky/internal/setup"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install [dir]",
		Short: "Install rusky hooks, default to .rusky",
		Long: `Install the rusky dispatcher and hook stubs into <dir>/_ and set
core.hooksPath to it. dir defaults to .rusky (or "dir" in config.yaml) and is
taken relative to the repository root.

Running install again rewrites every managed file, which repairs a partial
or damaged install. Set RUSKY=0 to skip, e.g. in CI or production builds.`,
		Example: `  rusky install
  rusky install .config/hooks`,
		Args: cobra.ArbitraryArgs,
		RunE: runInstall,
	}
}

func runInstall(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	// Settings come back resolved even when config.yaml is broken, and
	// RUSKY=0 must not depend on the file.
	settings, err := config.Load()
	if err != nil && !settings.SkipInstall {
		return output.NewErrorWithCause("failed to load config", err)
	}

	dir := settings.HooksDir
	if len(args) > 0 {
		dir = args[0]
	}

	client := git.New(settings.GitBin, "")
	result, err := setup.Install(cmd.Context(), client, setup.InstallOptions{
		Dir:  dir,
		Skip: settings.SkipInstall,
	})
	if err != nil {
		return err
	}

	if result.Skipped {
		if printer.IsJSON() {
			return printer.Success(map[string]any{"status": "skipped", "reason": "RUSKY=0"})
		}
		printer.Println("RUSKY=0 skip install")
		return nil
	}

	events := make([]string, 0, len(result.Events))
	for _, event := range result.Events {
		events = append(events, event.String())
	}
	return printer.Success(map[string]any{
		"status":     "installed",
		"message":    "rusky installed, core.hooksPath = " + result.HooksPath,
		"repo_root":  result.RepoRoot,
		"hook_dir":   result.HookDir,
		"hooks_path": result.HooksPath,
		"hooks":      events,
	})
}

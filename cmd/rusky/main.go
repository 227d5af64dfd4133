// Package main provides the entry point for the rusky CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/rusky/internal/config"
	"github.com/gorewood/rusky/internal/envfile"
	"github.com/gorewood/rusky/internal/log"
	"github.com/gorewood/rusky/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves --color against TTY detection of the command's stdout.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the printer every command writes through. Human-mode
// errors and warnings go to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			reportError(w, isJSONMode(cmd), err)
		}),
	)
	return output.GetExitCode(err)
}

// reportError prints a failed command's error once. In JSON mode the
// {"error","code"} object goes to w as well so scripts can read stderr.
func reportError(w io.Writer, jsonMode bool, err error) {
	output.NewPrinter(w, jsonMode, false).Error(err)
}

// newRootCmd creates the root command for the rusky CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rusky",
		Short: "Git hooks made easy",
		Long: `Rusky - manage git hooks from files committed to your repository.

rusky install writes a dispatcher and one stub per hook into <dir>/_ and
points core.hooksPath at it. Each stub runs <dir>/<hook> with sh when that
file exists, so hooks are plain shell snippets checked into the project.

Environment variables:
  RUSKY=0       Skip install (and skip hooks when set at commit time)
  RUSKY=2       Trace hook execution with set -x
  RUSKY_GIT     git executable to use`,
		Example: `  rusky install
  rusky install .rusky
  rusky uninstall
  rusky set .rusky/commit-msg "cargo fmt"
  rusky add .rusky/pre-commit "cargo clippy -- -D warnings"`,
		Version:       buildVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Unknown or missing subcommands print usage and succeed.
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := log.New(cmd.ErrOrStderr(), verbose)
		loadEnvFiles(logger)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("verbose", false, "Trace git commands and file writes on stderr")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; variables already in the environment always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-repo override, gitignored)
//  2. $CWD/.env         (per-repo)
//  3. <config dir>/env  (global fallback)
func loadEnvFiles(logger *log.Logger) {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	for _, path := range paths {
		keys, err := envfile.Load(path)
		if err != nil {
			logger.Debugf("skipping %s: %v", path, err)
			continue
		}
		if len(keys) > 0 {
			logger.Debugf("loaded %v from %s", keys, path)
		}
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "setup", Title: "Setup Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "hooks", Title: "Hook Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newInstallCmd(), "setup")
	addGroupedCommand(cmd, newUninstallCmd(), "setup")
	addGroupedCommand(cmd, newStatusCmd(), "setup")

	addGroupedCommand(cmd, newSetCmd(), "hooks")
	addGroupedCommand(cmd, newAddCmd(), "hooks")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

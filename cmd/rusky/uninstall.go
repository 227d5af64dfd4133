package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/rusky/internal/config"
	"github.com/gorewood/rusky/internal/git"
	"github.com/gorewood/rusky/internal/output"
	"github.com/gorewood/rusky/internal/setup"
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall rusky from git hooks directory",
		Long: `Unset core.hooksPath so git stops running rusky hooks.

The managed directory and your hook files are left in place; run
rusky install to turn them back on.`,
		Args: cobra.ArbitraryArgs,
		RunE: runUninstall,
	}
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	settings, err := config.Load()
	if err != nil {
		return output.NewErrorWithCause("failed to load config", err)
	}

	if err := setup.Uninstall(cmd.Context(), git.New(settings.GitBin, "")); err != nil {
		return err
	}
	return printer.Success(map[string]any{
		"status":  "uninstalled",
		"message": "rusky uninstalled, core.hooksPath unset",
	})
}

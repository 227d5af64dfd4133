package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/rusky/internal/setup"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <cmd>",
		Short: "Set command to hook file",
		Long: `Replace the content of a hook file with cmd. The file is created when
its directory exists. Managed stubs under <dir>/_ are refused.`,
		Example: `  rusky set .rusky/commit-msg "cargo fmt"`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, "set", setup.SetCommand)
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <cmd>",
		Short: "Add command to hook file",
		Long: `Append cmd to an existing hook file. The text is appended as given, with
no separator; start cmd with a newline to put it on its own line.`,
		Example: `  rusky add .rusky/pre-commit "cargo clippy -- -D warnings"`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, "add", setup.AddCommand)
		},
	}
}

// runEdit applies edit to args[0] with args[1]. Fewer than two arguments
// print usage and succeed; extra arguments are ignored.
func runEdit(cmd *cobra.Command, args []string, action string, edit func(path, command string) error) error {
	if len(args) < 2 {
		return cmd.Help()
	}
	path, command := args[0], args[1]
	printer := newPrinter(cmd)

	// Git only runs files named after a hook; flag likely typos.
	if _, err := setup.ParseEvent(filepath.Base(path)); err != nil && !printer.IsJSON() {
		printer.Warn("%v; git will not run %s", err, path)
	}

	if err := edit(path, command); err != nil {
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"status": "ok", "action": action, "file": path})
	}
	return nil
}

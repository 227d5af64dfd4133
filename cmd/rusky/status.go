package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/rusky/internal/config"
	"github.com/gorewood/rusky/internal/git"
	"github.com/gorewood/rusky/internal/output"
	"github.com/gorewood/rusky/internal/setup"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [dir]",
		Short: "Show how git hooks are wired",
		Long: `Show core.hooksPath, whether it points at <dir>/_, the state of every
managed stub, and which hooks have a command file.

Examples:
  rusky status            # Human-readable status
  rusky status --json     # Output status as JSON for scripting`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	settings, err := config.Load()
	if err != nil {
		return output.NewErrorWithCause("failed to load config", err)
	}
	dir := settings.HooksDir
	if len(args) > 0 {
		dir = args[0]
	}

	status, err := setup.Inspect(cmd.Context(), git.New(settings.GitBin, ""), dir)
	if err != nil {
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(status)
	}
	printStatus(printer, status)
	return nil
}

func printStatus(printer *output.Printer, status *setup.Status) {
	styles := printer.Styles()

	printer.Section("Repository")
	printer.KeyValue("Root", status.RepoRoot)
	hooksPath := status.HooksPath
	if hooksPath == "" {
		hooksPath = "(unset)"
	}
	printer.KeyValue("core.hooksPath", hooksPath)

	switch {
	case status.Healthy():
		printer.Println(styles.Success.Render("rusky is installed"))
	case status.Bound:
		printer.Println(styles.Warning.Render("managed files are damaged, run: rusky install " + status.Dir))
	default:
		if status.HooksPath != "" {
			printer.Warn("core.hooksPath points at %s, not %s", status.HooksPath, status.ExpectedHooksPath)
		}
		printer.Println(styles.Warning.Render("not installed, run: rusky install " + status.Dir))
	}

	printer.Section("Hooks")
	rows := make([][]string, 0, len(status.Hooks))
	for _, hook := range status.Hooks {
		command := "-"
		if hook.HasCommand {
			command = "yes"
		}
		rows = append(rows, []string{hook.Event.String(), hook.Stub, command})
	}
	printer.Table([]string{"HOOK", "STUB", "COMMAND"}, rows)
}

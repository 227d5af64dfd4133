// Package output provides structured output handling for the rusky CLI.
//
// Every command writes through a Printer, which switches between
// human-readable and JSON output:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": "Installed hooks to .rusky/_"})
//	printer.Error(err)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), results and errors are
// structured:
//
//	// Success: {"status": "ok", "hooks_path": ".rusky/_", ...}
//	// Error:   {"error": "message", "code": 1}
//
// # Styling
//
// Human-readable output uses lipgloss styles that are cleared when the
// output is not a terminal or --color never is set.
//
// # Exit Codes
//
// rusky exits 0 on success (including a skipped install and printed usage)
// and 1 on any failure. ExitError carries the code and wraps the underlying
// cause so callers can still match sentinels with errors.Is:
//
//	output.NewError("not in a git repository")
//	output.NewErrorWithCause("failed to write hook", err)
package output

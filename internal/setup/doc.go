// Package setup provides the business logic for installing and managing
// rusky's hook directory in a repository.
//
// This package contains the install/uninstall protocol, the managed
// directory writer, the hook command editor, and status inspection.
// Command-layer adapters in cmd/rusky/ and the MCP tools handle flags and
// output formatting and delegate here for the actual work.
//
// # Layout
//
// For a managed root such as .rusky:
//
//	.rusky/pre-commit      user-authored hook commands (committed)
//	.rusky/_/.gitignore    "*", keeps the generated files untracked
//	.rusky/_/rusky         the dispatcher script
//	.rusky/_/<event>       one stub per Event, sourcing the dispatcher
//
// and core.hooksPath is set to .rusky/_.
//
// # Operations
//
//	result, err := setup.Install(ctx, client, setup.InstallOptions{Dir: ".rusky"})
//	err := setup.Uninstall(ctx, client)
//	err := setup.AddCommand(".rusky/pre-commit", "go vet ./...\n")
//	status, err := setup.Inspect(ctx, client, ".rusky")
package setup

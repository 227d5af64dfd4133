// Package git runs the git executable on behalf of rusky.
//
// A Client shells out to git, captures stdout/stderr, and translates
// failures into *output.ExitError values whose cause chain carries one of
// the package sentinels:
//
//	client := git.New("git", "")
//	if err := client.CheckAvailable(ctx); err != nil {
//	    // errors.Is(err, git.ErrToolMissing)
//	}
//	root, err := client.RepoRoot(ctx)          // git.ErrNotARepository
//	err = client.SetHooksPath(ctx, ".rusky/_") // git.ErrConfigWrite
//	err = client.UnsetHooksPath(ctx)           // git.ErrConfigUnset
//
// Every command is traced through the context logger when --verbose is set.
package git

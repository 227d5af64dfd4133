package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/rusky/internal/config"
	"github.com/gorewood/rusky/internal/output"
)

// SetCommand replaces the content of the hook file at path with command.
// The file is created if its directory exists. Managed stubs are refused:
// overwriting one would stop the event from reaching the dispatcher.
func SetCommand(path, command string) error {
	if inManagedDir(path) {
		return stubError(path)
	}
	existing, err := os.ReadFile(path) //nolint:gosec // user-chosen hook file
	switch {
	case err == nil:
		if isStub(path, string(existing)) {
			return stubError(path)
		}
	case !os.IsNotExist(err):
		return ioError("failed to read hook file", err)
	}

	return writeHookFile(path, command)
}

// AddCommand appends command to the hook file at path. The text is joined
// as is; include a leading newline in command to start a new line.
func AddCommand(path, command string) error {
	existing, err := os.ReadFile(path) //nolint:gosec // user-chosen hook file
	if err != nil {
		if os.IsNotExist(err) {
			return notFoundError(path, err)
		}
		return ioError("failed to read hook file", err)
	}
	if isStub(path, string(existing)) {
		return stubError(path)
	}

	return writeHookFile(path, string(existing)+command)
}

// ReadCommand returns the content of the hook file at path.
func ReadCommand(path string) (string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // user-chosen hook file
	if err != nil {
		if os.IsNotExist(err) {
			return "", notFoundError(path, err)
		}
		return "", ioError("failed to read hook file", err)
	}
	return string(content), nil
}

func writeHookFile(path, content string) error {
	//nolint:gosec // hook command files are run through sh, no exec bit needed
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		if os.IsNotExist(err) {
			return notFoundError(path, err)
		}
		return ioError("failed to write hook file", err)
	}
	return nil
}

func notFoundError(path string, err error) error {
	return output.NewErrorWithCause("hook file not found: "+path, fmt.Errorf("%w: %w", ErrHookNotFound, err))
}

func stubError(path string) error {
	return output.NewErrorWithCause(
		path+" is a rusky stub; edit the hook file in the parent directory instead",
		ErrStubProtected,
	)
}

// CommandPath returns the user hook file for event under the managed root
// dir, which is taken relative to repoRoot unless absolute.
func CommandPath(repoRoot, dir string, event Event) string {
	if dir == "" {
		dir = config.DefaultHooksDir
	}
	return filepath.Join(resolveRoot(repoRoot, dir), event.String())
}

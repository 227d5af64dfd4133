package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/rusky/internal/log"
	"github.com/gorewood/rusky/internal/output"
)

// Errors carried in the cause chain of setup failures.
var (
	ErrIO            = errors.New("hook file I/O failed")
	ErrHookNotFound  = errors.New("hook file not found")
	ErrStubProtected = errors.New("refusing to edit a managed stub")
)

const (
	dirPerm  os.FileMode = 0o755
	stubPerm os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// InternalPath returns <root>/_ for a managed root.
func InternalPath(root string) string {
	return filepath.Join(root, InternalDir)
}

// WriteHookDir materializes the managed directory under root: it creates
// <root>/_ if needed, then writes the ignore marker, the dispatcher, and one
// executable stub per Event. Every write overwrites, so re-running after a
// partial failure repairs the directory. The first failure aborts; nothing
// already written is removed. Returns the path of <root>/_.
func WriteHookDir(ctx context.Context, root string) (string, error) {
	logger := log.FromContext(ctx)
	hookDir := InternalPath(root)

	if err := os.MkdirAll(hookDir, dirPerm); err != nil {
		return "", ioError("failed to create git hooks directory", err)
	}

	//nolint:gosec // the marker and dispatcher are meant to be world-readable
	if err := os.WriteFile(filepath.Join(hookDir, IgnoreName), []byte(IgnoreContent), filePerm); err != nil {
		return "", ioError("failed to write .gitignore", err)
	}

	//nolint:gosec // see above
	if err := os.WriteFile(filepath.Join(hookDir, DispatcherName), []byte(Dispatcher()), filePerm); err != nil {
		return "", ioError("failed to write rusky script", err)
	}

	for _, event := range events {
		stubPath := filepath.Join(hookDir, event.String())
		// #nosec G306 -- hook needs execute permission
		if err := os.WriteFile(stubPath, []byte(StubContent), stubPerm); err != nil {
			return "", ioError("failed to write hook file", err)
		}
		// WriteFile keeps the mode of an existing file.
		if err := os.Chmod(stubPath, stubPerm); err != nil {
			return "", ioError("failed to set hook file permissions", err)
		}
	}

	logger.Debugf("wrote %d hook stubs to %s", len(events), hookDir)
	return hookDir, nil
}

func ioError(message string, err error) error {
	return output.NewErrorWithCause(message, fmt.Errorf("%w: %w", ErrIO, err))
}

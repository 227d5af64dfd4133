package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gorewood/rusky/internal/log"
	"github.com/gorewood/rusky/internal/output"
)

// Sentinel causes carried by errors returned from Client methods.
var (
	ErrToolMissing    = errors.New("git executable unavailable")
	ErrNotARepository = errors.New("not inside a git working tree")
	ErrConfigWrite    = errors.New("git config write failed")
	ErrConfigUnset    = errors.New("git config unset failed")
)

// HooksPathKey is the repository setting git consults for its hook directory.
const HooksPathKey = "core.hooksPath"

// CommandError describes a git invocation that started but exited non-zero.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := e.Stderr
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), msg)
}

// Unwrap returns the underlying *exec.ExitError.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Client runs git commands.
type Client struct {
	// Bin is the git executable, looked up in PATH when it has no separator.
	Bin string
	// Dir is the working directory for commands; empty means the process cwd.
	Dir string
}

// New creates a Client. An empty bin defaults to "git".
func New(bin, dir string) *Client {
	if bin == "" {
		bin = "git"
	}
	return &Client{Bin: bin, Dir: dir}
}

// Run executes git with the given arguments and returns trimmed stdout.
// If git cannot be started at all the error wraps ErrToolMissing; if it
// exits non-zero the error is a *CommandError.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	log.FromContext(ctx).Command(c.Bin, args...)

	cmd := exec.CommandContext(ctx, c.Bin, args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %w", ErrToolMissing, err)
		}
		return "", &CommandError{
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      exitErr,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CheckAvailable verifies that git can be invoked and answers a version query.
func (c *Client) CheckAvailable(ctx context.Context) error {
	if _, err := c.Run(ctx, "--version"); err != nil {
		if !errors.Is(err, ErrToolMissing) {
			err = fmt.Errorf("%w: %w", ErrToolMissing, err)
		}
		return output.NewErrorWithCause("git command not found", err)
	}
	return nil
}

// RepoRoot returns the top-level directory of the working tree.
func (c *Client) RepoRoot(ctx context.Context) (string, error) {
	root, err := c.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		if errors.Is(err, ErrToolMissing) {
			return "", output.NewErrorWithCause("git command not found", err)
		}
		return "", output.NewErrorWithCause("not in a git repository", fmt.Errorf("%w: %w", ErrNotARepository, err))
	}
	return root, nil
}

// SetHooksPath points core.hooksPath at value.
func (c *Client) SetHooksPath(ctx context.Context, value string) error {
	if _, err := c.Run(ctx, "config", HooksPathKey, value); err != nil {
		return output.NewErrorWithCause("failed to set hooks path", fmt.Errorf("%w: %w", ErrConfigWrite, err))
	}
	return nil
}

// UnsetHooksPath removes core.hooksPath from the repository config.
// A key that is already absent is reported as a failure, like any other
// non-zero exit from git config --unset.
func (c *Client) UnsetHooksPath(ctx context.Context) error {
	if _, err := c.Run(ctx, "config", "--unset", HooksPathKey); err != nil {
		return output.NewErrorWithCause("failed to unset hooks path", fmt.Errorf("%w: %w", ErrConfigUnset, err))
	}
	return nil
}

// HooksPath returns the effective core.hooksPath, or "" when it is unset.
func (c *Client) HooksPath(ctx context.Context) (string, error) {
	value, err := c.Run(ctx, "config", "--get", HooksPathKey)
	if err == nil {
		return value, nil
	}
	// git config --get exits 1 when the key is missing.
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
		return "", nil
	}
	if errors.Is(err, ErrToolMissing) {
		return "", output.NewErrorWithCause("git command not found", err)
	}
	return "", output.NewErrorWithCause("failed to read hooks path", err)
}

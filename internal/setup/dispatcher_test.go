package setup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gorewood/rusky/internal/git"
)

// installForHooks installs .rusky into a fresh repository and returns the
// repository path.
func installForHooks(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("hook stubs need a POSIX sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	repo := newRepo(t)
	if _, err := Install(context.Background(), git.New("", repo), InstallOptions{Dir: ".rusky"}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	return repo
}

// runStub executes a stub the way git does: as an executable, from the
// repository root, with arguments and stdin.
func runStub(t *testing.T, repo string, event Event, stdin string, args ...string) (int, string) {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), filepath.Join(repo, ".rusky", "_", event.String()), args...)
	cmd.Dir = repo
	cmd.Stdin = strings.NewReader(stdin)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, out.String()
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), out.String()
	default:
		t.Fatalf("running stub %s: %v", event, err)
		return -1, ""
	}
}

func TestStub_NoCommandExitsZero(t *testing.T) {
	repo := installForHooks(t)

	code, out := runStub(t, repo, PreCommit, "")
	if code != 0 {
		t.Errorf("pre-commit stub exit = %d, want 0\n%s", code, out)
	}
}

func TestStub_RunsUserHookWithArgsAndStdin(t *testing.T) {
	repo := installForHooks(t)
	writeTestFile(t, filepath.Join(repo, ".rusky", "pre-push"),
		`echo "$1 $2" > args.txt
cat > stdin.txt
`)

	code, out := runStub(t, repo, PrePush, "refs/heads/main abc\n", "origin", "git@example.com:repo.git")
	if code != 0 {
		t.Fatalf("pre-push exit = %d\n%s", code, out)
	}
	if got := readTestFile(t, filepath.Join(repo, "args.txt")); got != "origin git@example.com:repo.git\n" {
		t.Errorf("args = %q", got)
	}
	if got := readTestFile(t, filepath.Join(repo, "stdin.txt")); got != "refs/heads/main abc\n" {
		t.Errorf("stdin = %q", got)
	}
}

func TestStub_PropagatesExitStatus(t *testing.T) {
	repo := installForHooks(t)
	writeTestFile(t, filepath.Join(repo, ".rusky", "commit-msg"), "exit 3\n")

	code, out := runStub(t, repo, CommitMsg, "", ".git/COMMIT_EDITMSG")
	if code != 3 {
		t.Errorf("commit-msg exit = %d, want 3", code)
	}
	if !strings.Contains(out, "rusky - commit-msg script failed (code 3)") {
		t.Errorf("missing failure diagnostic: %q", out)
	}
}

func TestStub_RuskyZeroSkipsHooks(t *testing.T) {
	repo := installForHooks(t)
	writeTestFile(t, filepath.Join(repo, ".rusky", "pre-commit"), "exit 1\n")
	t.Setenv("RUSKY", "0")

	if code, out := runStub(t, repo, PreCommit, ""); code != 0 {
		t.Errorf("RUSKY=0 pre-commit exit = %d, want 0\n%s", code, out)
	}
}

func TestStub_GitCommitUsesHooks(t *testing.T) {
	repo := installForHooks(t)
	runGit(t, repo, "config", "user.email", "test@test.com")
	runGit(t, repo, "config", "user.name", "Test User")
	writeTestFile(t, filepath.Join(repo, ".rusky", "pre-commit"), "exit 1\n")
	writeTestFile(t, filepath.Join(repo, "a.txt"), "a")
	runGit(t, repo, "add", "a.txt")

	cmd := exec.CommandContext(context.Background(), "git", "commit", "-m", "blocked")
	cmd.Dir = repo
	if err := cmd.Run(); err == nil {
		t.Fatal("git commit succeeded although pre-commit exits 1")
	}

	if err := os.WriteFile(filepath.Join(repo, ".rusky", "pre-commit"), []byte("exit 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runGit(t, repo, "commit", "-m", "allowed")
}

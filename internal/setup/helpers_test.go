package setup

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeVCS records the protocol steps Install and Uninstall take.
type fakeVCS struct {
	root      string
	hooksPath string
	calls     []string

	checkErr error
	rootErr  error
	setErr   error
	unsetErr error
}

func (f *fakeVCS) CheckAvailable(_ context.Context) error {
	f.calls = append(f.calls, "check")
	return f.checkErr
}

func (f *fakeVCS) RepoRoot(_ context.Context) (string, error) {
	f.calls = append(f.calls, "root")
	return f.root, f.rootErr
}

func (f *fakeVCS) SetHooksPath(_ context.Context, value string) error {
	f.calls = append(f.calls, "set "+value)
	if f.setErr != nil {
		return f.setErr
	}
	f.hooksPath = value
	return nil
}

func (f *fakeVCS) UnsetHooksPath(_ context.Context) error {
	f.calls = append(f.calls, "unset")
	if f.unsetErr != nil {
		return f.unsetErr
	}
	if f.hooksPath == "" {
		return errors.New("key not set")
	}
	f.hooksPath = ""
	return nil
}

func (f *fakeVCS) HooksPath(_ context.Context) (string, error) {
	return f.hooksPath, nil
}

// isolate keeps user and system git config out of the test and stops
// repository discovery from walking above dir.
func isolate(t *testing.T, dir string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	t.Setenv("RUSKY", "")
}

// newRepo initializes an empty repository in a temp dir.
func newRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	isolate(t, dir)
	runGit(t, dir, "init")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// gitConfigGet returns core.hooksPath and whether it is set.
func gitConfigGet(t *testing.T, dir string) (string, bool) {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), "git", "config", "--get", "core.hooksPath")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

type fileSnapshot struct {
	content string
	mode    os.FileMode
}

// snapshot captures every file under dir keyed by relative path.
func snapshot(t *testing.T, dir string) map[string]fileSnapshot {
	t.Helper()
	files := map[string]fileSnapshot{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		files[rel] = fileSnapshot{content: string(content), mode: info.Mode()}
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", dir, err)
	}
	return files
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

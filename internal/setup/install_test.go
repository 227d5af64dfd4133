package setup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gorewood/rusky/internal/git"
)

func TestInstall_ProtocolOrder(t *testing.T) {
	root := t.TempDir()
	vcs := &fakeVCS{root: root}

	result, err := Install(context.Background(), vcs, InstallOptions{Dir: ".rusky"})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	want := []string{"check", "root", "set .rusky/_"}
	if !slices.Equal(vcs.calls, want) {
		t.Errorf("calls = %v, want %v", vcs.calls, want)
	}
	if result.HooksPath != ".rusky/_" {
		t.Errorf("HooksPath = %q", result.HooksPath)
	}
	if result.HookDir != filepath.Join(root, ".rusky", "_") {
		t.Errorf("HookDir = %q", result.HookDir)
	}
	if len(result.Events) != 13 {
		t.Errorf("Events = %d, want 13", len(result.Events))
	}
}

func TestInstall_DefaultDir(t *testing.T) {
	root := t.TempDir()
	vcs := &fakeVCS{root: root}

	if _, err := Install(context.Background(), vcs, InstallOptions{}); err != nil {
		t.Fatal(err)
	}
	if vcs.hooksPath != ".rusky/_" {
		t.Errorf("hooksPath = %q, want .rusky/_", vcs.hooksPath)
	}
}

func TestInstall_Skip(t *testing.T) {
	root := t.TempDir()
	vcs := &fakeVCS{root: root}

	result, err := Install(context.Background(), vcs, InstallOptions{Dir: ".rusky", Skip: true})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if !result.Skipped {
		t.Error("Skipped = false")
	}
	if len(vcs.calls) != 0 {
		t.Errorf("skipped install called git: %v", vcs.calls)
	}
	if entries, _ := os.ReadDir(root); len(entries) != 0 {
		t.Errorf("skipped install wrote %d entries", len(entries))
	}
}

func TestInstall_ToolMissingWritesNothing(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)
	client := git.New(filepath.Join(t.TempDir(), "missing-git"), dir)

	_, err := Install(context.Background(), client, InstallOptions{Dir: ".rusky"})
	if !errors.Is(err, git.ErrToolMissing) {
		t.Fatalf("Install() error = %v, want ErrToolMissing", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("install with missing git wrote %d entries", len(entries))
	}
}

func TestInstall_NotARepository(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	_, err := Install(context.Background(), git.New("", dir), InstallOptions{Dir: ".rusky"})
	if !errors.Is(err, git.ErrNotARepository) {
		t.Fatalf("Install() error = %v, want ErrNotARepository", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, ".rusky")); !os.IsNotExist(statErr) {
		t.Error("install outside a repository created the managed directory")
	}
}

func TestInstall_ConfigWriteFailure(t *testing.T) {
	root := t.TempDir()
	boom := errors.New("config locked")
	vcs := &fakeVCS{root: root, setErr: boom}

	_, err := Install(context.Background(), vcs, InstallOptions{Dir: ".rusky"})
	if !errors.Is(err, boom) {
		t.Fatalf("Install() error = %v, want %v", err, boom)
	}
	// Files are written before the config step and stay behind.
	if _, statErr := os.Stat(filepath.Join(root, ".rusky", "_", "rusky")); statErr != nil {
		t.Errorf("dispatcher should remain after a config failure: %v", statErr)
	}
}

func TestInstallUninstall_RealRepository(t *testing.T) {
	repo := newRepo(t)
	client := git.New("", repo)
	ctx := context.Background()

	if _, err := Install(ctx, client, InstallOptions{Dir: ".rusky"}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if got, ok := gitConfigGet(t, repo); !ok || got != ".rusky/_" {
		t.Fatalf("core.hooksPath = (%q, %v), want .rusky/_", got, ok)
	}
	before := snapshot(t, filepath.Join(repo, ".rusky"))

	// Second install leaves the same state.
	if _, err := Install(ctx, client, InstallOptions{Dir: ".rusky"}); err != nil {
		t.Fatalf("second Install() error = %v", err)
	}
	again := snapshot(t, filepath.Join(repo, ".rusky"))
	if len(again) != len(before) {
		t.Fatalf("reinstall changed file count: %d -> %d", len(before), len(again))
	}

	if err := Uninstall(ctx, client); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if got, ok := gitConfigGet(t, repo); ok {
		t.Errorf("core.hooksPath still set to %q after uninstall", got)
	}
	after := snapshot(t, filepath.Join(repo, ".rusky"))
	for name, want := range before {
		if after[name] != want {
			t.Errorf("%s changed by uninstall", name)
		}
	}

	// The key is now absent; a second uninstall reports the failure.
	if err := Uninstall(ctx, client); !errors.Is(err, git.ErrConfigUnset) {
		t.Errorf("second Uninstall() error = %v, want ErrConfigUnset", err)
	}
}

func TestInstall_FromSubdirectoryUsesRepoRoot(t *testing.T) {
	repo := newRepo(t)
	sub := filepath.Join(repo, "pkg", "deep")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Install(context.Background(), git.New("", sub), InstallOptions{Dir: ".rusky"})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(repo, ".rusky", "_", "pre-commit")); err != nil {
		t.Errorf("stub not written under repository root: %v", err)
	}
	if _, err := os.Stat(filepath.Join(sub, ".rusky")); !os.IsNotExist(err) {
		t.Error("managed directory written relative to the subdirectory")
	}
	if result.HooksPath != ".rusky/_" {
		t.Errorf("HooksPath = %q", result.HooksPath)
	}
}

func TestUninstall_ToolMissing(t *testing.T) {
	vcs := &fakeVCS{checkErr: git.ErrToolMissing, hooksPath: ".rusky/_"}

	if err := Uninstall(context.Background(), vcs); !errors.Is(err, git.ErrToolMissing) {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if vcs.hooksPath != ".rusky/_" {
		t.Error("hooks path changed although git was unavailable")
	}
}

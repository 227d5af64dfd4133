package setup

import (
	_ "embed"
	"path/filepath"
)

// Names inside the managed directory.
const (
	// InternalDir is the subdirectory of the managed root that git points at.
	InternalDir = "_"
	// DispatcherName is the dispatcher script every stub sources.
	DispatcherName = "rusky"
	// IgnoreName is the ignore marker keeping generated files untracked.
	IgnoreName = ".gitignore"
	// IgnoreContent ignores everything in the internal directory.
	IgnoreContent = "*"
)

// StubContent is the exact body of every stub. The dispatcher is located
// relative to the stub's own path, so the managed directory can live
// anywhere in the repository.
const StubContent = "#!/usr/bin/env sh\n. \"${0%/*}/rusky\""

//go:embed assets/rusky
var dispatcherScript string

// Dispatcher returns the dispatcher script written to <root>/_/rusky.
func Dispatcher() string {
	return dispatcherScript
}

// isStub reports whether the file at path is a managed stub: it sits in a
// managed directory under an event name, or holds exactly the stub body.
// Hook files that merely mention the dispatcher are not stubs.
func isStub(path, content string) bool {
	return content == StubContent || inManagedDir(path)
}

// inManagedDir reports whether path names an event inside <root>/_.
func inManagedDir(path string) bool {
	if filepath.Base(filepath.Dir(path)) != InternalDir {
		return false
	}
	_, err := ParseEvent(filepath.Base(path))
	return err == nil
}

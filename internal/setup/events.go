package setup

import (
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/gorewood/rusky/internal/output"
)

// Event is a git hook name rusky manages.
type Event string

// The managed events. The set is fixed: it is the contract with git about
// which stub files exist in the managed directory.
const (
	PreCommit        Event = "pre-commit"
	PrepareCommitMsg Event = "prepare-commit-msg"
	CommitMsg        Event = "commit-msg"
	PostCommit       Event = "post-commit"
	ApplypatchMsg    Event = "applypatch-msg"
	PreApplypatch    Event = "pre-applypatch"
	PostApplypatch   Event = "post-applypatch"
	PreRebase        Event = "pre-rebase"
	PostRewrite      Event = "post-rewrite"
	PostCheckout     Event = "post-checkout"
	PostMerge        Event = "post-merge"
	PrePush          Event = "pre-push"
	PreAutoGC        Event = "pre-auto-gc"
)

var events = [...]Event{
	PreCommit,
	PrepareCommitMsg,
	CommitMsg,
	PostCommit,
	ApplypatchMsg,
	PreApplypatch,
	PostApplypatch,
	PreRebase,
	PostRewrite,
	PostCheckout,
	PostMerge,
	PrePush,
	PreAutoGC,
}

// Events returns the managed events in install order.
// The returned slice is a copy.
func Events() []Event {
	return slices.Clone(events[:])
}

// ParseEvent validates a hook name. The error for an unknown name suggests
// the closest managed hook when there is one.
func ParseEvent(name string) (Event, error) {
	e := Event(name)
	if !slices.Contains(events[:], e) {
		message := fmt.Sprintf("unknown hook %q", name)
		if suggestion := Suggest(name); suggestion != "" {
			message += fmt.Sprintf(", did you mean %s?", suggestion)
		}
		return "", output.NewError(message)
	}
	return e, nil
}

// Suggest returns the managed hook that best fuzzy-matches name, or "".
func Suggest(name string) Event {
	if name == "" {
		return ""
	}
	names := make([]string, len(events))
	for i, event := range events {
		names[i] = event.String()
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return events[matches[0].Index]
}

// String returns the hook file name.
func (e Event) String() string {
	return string(e)
}

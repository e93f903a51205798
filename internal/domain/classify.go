package domain

import (
	"slices"
	"strings"
)

// ChangeKind classifies what a rename event changed about a file.
type ChangeKind int

const (
	// ChangeNone means the event carries nothing worth tracking.
	ChangeNone ChangeKind = iota
	// ChangeName means the file's own basename changed.
	ChangeName
	// ChangeFolder means the file moved between folders with its name intact.
	ChangeFolder
)

// ClassifyOptions carries the settings a classification depends on.
type ClassifyOptions struct {
	CaseSensitive     bool
	TrackedExtensions []string
}

// Change is the result of classifying a rename event.
type Change struct {
	Kind      ChangeKind
	OldBase   string
	NewBase   string
	OldParent string
	NewParent string
}

// Classify decides whether renaming oldPath to newPath (a file with the given
// extension, without dot) constitutes a name change, a folder change, or
// nothing. A simultaneous rename-and-move counts purely as a name change;
// the two kinds are mutually exclusive.
func Classify(oldPath, newPath, extension string, opts ClassifyOptions) Change {
	if !slices.Contains(opts.TrackedExtensions, extension) {
		return Change{Kind: ChangeNone}
	}

	change := Change{
		OldBase:   Basename(oldPath),
		NewBase:   Basename(newPath),
		OldParent: ParentName(oldPath),
		NewParent: ParentName(newPath),
	}

	switch {
	case !SameName(change.OldBase, change.NewBase, opts.CaseSensitive):
		change.Kind = ChangeName
	case change.OldParent != change.NewParent:
		change.Kind = ChangeFolder
	}
	return change
}

// SameName compares two names under the active case policy.
func SameName(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

package application

import (
	"log/slog"
	"sync/atomic"

	"aliashist/internal/config"
	"aliashist/internal/domain"
	"aliashist/internal/ports"
)

// Tracker is the rename-tracking service: it classifies each rename
// notification, gates it through the ignore and scope rules, and feeds
// surviving candidates to the debounce coordinator for settlement.
type Tracker struct {
	coordinator *Coordinator
	merger      *Merger
	logger      *slog.Logger

	// settings holds an immutable snapshot; the configuration surface swaps
	// it atomically between evaluations.
	settings atomic.Pointer[config.Settings]
}

// NewTracker wires a tracker over the given collaborators.
func NewTracker(vault ports.Vault, editor ports.MetadataEditor, scheduler ports.Scheduler, settings config.Settings, logger *slog.Logger) *Tracker {
	t := &Tracker{
		merger: NewMerger(vault, editor, logger),
		logger: logger,
	}
	t.SetSettings(settings)
	t.coordinator = NewCoordinator(scheduler, func(path string, names []string) {
		t.merger.Settle(path, names, t.Settings())
	})
	return t
}

// Settings returns the current settings snapshot.
func (t *Tracker) Settings() config.Settings {
	return *t.settings.Load()
}

// SetSettings replaces the settings snapshot atomically.
func (t *Tracker) SetSettings(settings config.Settings) {
	settings = settings.Clamp()
	t.settings.Store(&settings)
}

// HandleRename processes one rename notification from the vault.
func (t *Tracker) HandleRename(file *ports.File, oldPath string) {
	settings := t.Settings()

	change := domain.Classify(oldPath, file.Path, file.Extension, domain.ClassifyOptions{
		CaseSensitive:     settings.CaseSensitive,
		TrackedExtensions: settings.TrackedExtensions,
	})

	var candidate string
	switch change.Kind {
	case domain.ChangeName:
		if !domain.InScope(file.Path, settings.IncludeFolders, settings.ExcludeFolders) {
			return
		}
		patterns := domain.CompilePatterns(settings.IgnorePatterns, t.logger)
		if domain.MatchesAny(change.OldBase, patterns) || domain.MatchesAny(change.NewBase, patterns) {
			return
		}
		candidate = change.OldBase

	case domain.ChangeFolder:
		if !settings.TrackFolderRenames {
			return
		}
		if settings.FolderNoteName != "" && !domain.SameName(file.Basename, settings.FolderNoteName, settings.CaseSensitive) {
			return
		}
		// A root-level file has no parent name to alias.
		if change.OldParent == "" || change.NewParent == "" {
			return
		}
		patterns := domain.CompilePatterns(settings.IgnorePatterns, t.logger)
		if domain.MatchesAny(change.OldParent, patterns) || domain.MatchesAny(change.NewParent, patterns) {
			return
		}
		candidate = change.OldParent

	default:
		return
	}

	t.logger.Debug("queueing candidate", "old", oldPath, "new", file.Path, "candidate", candidate)
	t.coordinator.Enqueue(oldPath, file.Path, candidate, settings.Debounce(), settings.ChainPolicy)
}

// Pending reports how many files are inside an unsettled debounce window.
func (t *Tracker) Pending() int {
	return t.coordinator.PendingCount()
}

// Close cancels every outstanding debounce timer. In-flight candidates are
// dropped rather than settled.
func (t *Tracker) Close() {
	t.coordinator.CancelAll()
}

package application

import (
	"reflect"
	"testing"

	"aliashist/internal/config"
	"aliashist/internal/ports"
)

func newTestTracker(vault *fakeVault, editor *fakeEditor, settings config.Settings) (*Tracker, *fakeScheduler) {
	scheduler := &fakeScheduler{}
	tracker := NewTracker(vault, editor, scheduler, settings, testLogger())
	return tracker, scheduler
}

func mdFile(path string) *ports.File {
	v := newFakeVault(path)
	return v.Resolve(path)
}

func TestTrackerRecordsNameChange(t *testing.T) {
	vault := newFakeVault("renamed.md")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, config.Default())

	tracker.HandleRename(mdFile("renamed.md"), "original.md")
	scheduler.fire()

	if got := editor.lists["renamed.md"]; !reflect.DeepEqual(got, []string{"original"}) {
		t.Errorf("aliases = %v, want [original]", got)
	}
}

func TestTrackerIgnoresUntrackedExtension(t *testing.T) {
	vault := newFakeVault("image.png")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, config.Default())

	file := &ports.File{Path: "image.png", Basename: "image", Extension: "png"}
	tracker.HandleRename(file, "photo.png")
	scheduler.fire()

	if editor.writes != 0 {
		t.Errorf("writes = %d for untracked extension, want 0", editor.writes)
	}
}

func TestTrackerScopeAppliesToNameChanges(t *testing.T) {
	settings := config.Default()
	settings.IncludeFolders = []string{"projects"}

	vault := newFakeVault("areas/renamed.md", "projects/renamed.md")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, settings)

	tracker.HandleRename(mdFile("areas/renamed.md"), "areas/original.md")
	tracker.HandleRename(mdFile("projects/renamed.md"), "projects/original.md")
	scheduler.fire()

	if _, ok := editor.lists["areas/renamed.md"]; ok {
		t.Error("out-of-scope rename was recorded")
	}
	if got := editor.lists["projects/renamed.md"]; !reflect.DeepEqual(got, []string{"original"}) {
		t.Errorf("in-scope aliases = %v, want [original]", got)
	}
}

func TestTrackerIgnorePatternRejectsOldAndNewNames(t *testing.T) {
	settings := config.Default()
	settings.IgnorePatterns = []string{"^Untitled"}

	vault := newFakeVault("named.md", "Untitled 2.md")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, settings)

	// Old name ignorable: renaming away from an Untitled draft is noise.
	tracker.HandleRename(mdFile("named.md"), "Untitled 1.md")
	// New name ignorable: renaming into an ignored name is noise too.
	tracker.HandleRename(mdFile("Untitled 2.md"), "real note.md")
	scheduler.fire()

	if editor.writes != 0 {
		t.Errorf("writes = %d for ignorable renames, want 0", editor.writes)
	}
}

func TestTrackerPatternAddedDuringWindowSuppressesSettlement(t *testing.T) {
	vault := newFakeVault("Untitled 9.md")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, config.Default())

	// Candidate "Untitled 9" queues under the initial settings...
	tracker.HandleRename(mdFile("Untitled 9.md"), "Untitled 9 old.md")

	// ...then the pattern arrives before the window elapses.
	updated := config.Default()
	updated.IgnorePatterns = []string{"^Untitled"}
	tracker.SetSettings(updated)

	scheduler.fire()

	if editor.writes != 0 {
		t.Errorf("writes = %d, want 0: pattern added mid-window must suppress", editor.writes)
	}
}

func TestTrackerFolderChange(t *testing.T) {
	tests := []struct {
		name        string
		settings    func() config.Settings
		newPath     string
		oldPath     string
		wantAliases []string
	}{
		{
			name: "disabled folder tracking drops the event",
			settings: func() config.Settings {
				return config.Default()
			},
			newPath: "new folder/note.md",
			oldPath: "old folder/note.md",
		},
		{
			name: "enabled folder tracking records old parent",
			settings: func() config.Settings {
				s := config.Default()
				s.TrackFolderRenames = true
				return s
			},
			newPath:     "new folder/note.md",
			oldPath:     "old folder/note.md",
			wantAliases: []string{"old folder"},
		},
		{
			name: "folder note gate rejects other files",
			settings: func() config.Settings {
				s := config.Default()
				s.TrackFolderRenames = true
				s.FolderNoteName = "index"
				return s
			},
			newPath: "new folder/note.md",
			oldPath: "old folder/note.md",
		},
		{
			name: "folder note gate admits the folder note",
			settings: func() config.Settings {
				s := config.Default()
				s.TrackFolderRenames = true
				s.FolderNoteName = "index"
				return s
			},
			newPath:     "new folder/index.md",
			oldPath:     "old folder/index.md",
			wantAliases: []string{"old folder"},
		},
		{
			name: "move to vault root has no parent to alias",
			settings: func() config.Settings {
				s := config.Default()
				s.TrackFolderRenames = true
				return s
			},
			newPath: "note.md",
			oldPath: "old folder/note.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := newFakeVault(tt.newPath)
			editor := newFakeEditor()
			tracker, scheduler := newTestTracker(vault, editor, tt.settings())

			tracker.HandleRename(mdFile(tt.newPath), tt.oldPath)
			scheduler.fire()

			got := editor.lists[tt.newPath]
			if len(tt.wantAliases) == 0 {
				if len(got) != 0 {
					t.Errorf("aliases = %v, want none", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.wantAliases) {
				t.Errorf("aliases = %v, want %v", got, tt.wantAliases)
			}
		})
	}
}

func TestTrackerFolderChangeBypassesScope(t *testing.T) {
	settings := config.Default()
	settings.TrackFolderRenames = true
	settings.IncludeFolders = []string{"somewhere else"}

	vault := newFakeVault("new folder/note.md")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, settings)

	tracker.HandleRename(mdFile("new folder/note.md"), "old folder/note.md")
	scheduler.fire()

	if got := editor.lists["new folder/note.md"]; !reflect.DeepEqual(got, []string{"old folder"}) {
		t.Errorf("aliases = %v, want [old folder]: scope must not gate folder changes", got)
	}
}

func TestTrackerCloseDropsPending(t *testing.T) {
	vault := newFakeVault("renamed.md")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, config.Default())

	tracker.HandleRename(mdFile("renamed.md"), "original.md")
	tracker.Close()
	scheduler.fire()

	if editor.writes != 0 {
		t.Errorf("writes = %d after Close, want 0", editor.writes)
	}
}

func TestTrackerCaseOnlyRenameIsNoOp(t *testing.T) {
	vault := newFakeVault("Note.md")
	editor := newFakeEditor()
	tracker, scheduler := newTestTracker(vault, editor, config.Default())

	tracker.HandleRename(mdFile("Note.md"), "note.md")
	scheduler.fire()

	if editor.writes != 0 {
		t.Errorf("writes = %d for case-only rename, want 0", editor.writes)
	}
}

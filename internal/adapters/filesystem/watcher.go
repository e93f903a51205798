package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"aliashist/internal/ports"
)

// pairWindow is how long a RENAME event waits for the CREATE of its new path
// before it is treated as a plain deletion.
const pairWindow = time.Second

var (
	// ErrVaultNotExist indicates the vault root does not exist.
	ErrVaultNotExist = errors.New("vault path does not exist")

	// ErrVaultNotDirectory indicates the vault root is not a directory.
	ErrVaultNotDirectory = errors.New("vault path is not a directory")
)

// renameStub is an old path waiting for the CREATE half of its rename.
type renameStub struct {
	path string
	at   time.Time
}

// Watcher observes a vault recursively and turns fsnotify RENAME/CREATE pairs
// into rename notifications for the handler. The kernel reports a rename as a
// RENAME on the old path followed by a CREATE on the new one, so the watcher
// stashes old paths briefly and pairs them with the next CREATE of the same
// extension. A paired directory fans out into one notification per file under
// it, which is what folder-rename tracking classifies on.
type Watcher struct {
	vault   *Vault
	handler ports.RenameHandler
	logger  *slog.Logger

	fsw   *fsnotify.Watcher
	stubs []renameStub
}

// NewWatcher creates a watcher over the vault, delivering to handler.
func NewWatcher(vault *Vault, handler ports.RenameHandler, logger *slog.Logger) (*Watcher, error) {
	info, err := os.Stat(vault.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrVaultNotExist
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrVaultNotDirectory
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{vault: vault, handler: handler, logger: logger, fsw: fsw}, nil
}

// Run watches until the context is cancelled. Events arrive on the fsnotify
// goroutine and are handled synchronously, so no two notifications overlap.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	if err := w.addRecursive(w.vault.Root()); err != nil {
		return err
	}
	w.logger.Info("watching vault", "root", w.vault.Root())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// addRecursive watches a directory tree, skipping hidden directories such as
// .obsidian and .git.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	w.purgeStale(time.Now())

	if hidden(event.Name, w.vault.Root()) {
		return
	}
	if event.Has(fsnotify.Rename) {
		w.stubs = append(w.stubs, renameStub{path: event.Name, at: time.Now()})
		return
	}
	if !event.Has(fsnotify.Create) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if err := w.addRecursive(event.Name); err != nil {
			w.logger.Warn("cannot watch new directory", "path", event.Name, "error", err)
		}
		if old, ok := w.takeStub(event.Name); ok {
			w.emitDirRename(old, event.Name)
		}
		return
	}
	if old, ok := w.takeStub(event.Name); ok {
		w.emitFileRename(old, event.Name)
	}
}

// takeStub pops the stashed rename that best matches newPath. Candidates must
// share the extension, which keeps editor save dances (write temp, rename
// over the note) from pairing a temp file with the note it replaced. Among
// candidates, a stub with the same basename (a move) or the same directory
// (an in-place rename) wins over a bare extension match, so a concurrent
// CREATE on an unrelated note cannot steal another file's pending stub.
// Ties keep the oldest stub.
func (w *Watcher) takeStub(newPath string) (string, bool) {
	ext := filepath.Ext(newPath)
	dir := filepath.Dir(newPath)
	base := filepath.Base(newPath)

	best, bestScore := -1, -1
	for i, stub := range w.stubs {
		if filepath.Ext(stub.path) != ext {
			continue
		}
		score := 0
		if filepath.Base(stub.path) == base {
			score += 2
		}
		if filepath.Dir(stub.path) == dir {
			score++
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", false
	}
	old := w.stubs[best].path
	w.stubs = append(w.stubs[:best], w.stubs[best+1:]...)
	return old, true
}

func (w *Watcher) purgeStale(now time.Time) {
	kept := w.stubs[:0]
	for _, stub := range w.stubs {
		if now.Sub(stub.at) <= pairWindow {
			kept = append(kept, stub)
		}
	}
	w.stubs = kept
}

func (w *Watcher) emitFileRename(oldAbs, newAbs string) {
	oldRel, ok := w.vault.Relative(oldAbs)
	if !ok {
		return
	}
	newRel, ok := w.vault.Relative(newAbs)
	if !ok {
		return
	}
	file := w.vault.Resolve(newRel)
	if file == nil {
		return
	}
	w.logger.Debug("rename detected", "old", oldRel, "new", newRel)
	w.handler.HandleRename(file, oldRel)
}

// emitDirRename fans a directory rename out into per-file notifications so
// the classifier sees each contained file's parent change.
func (w *Watcher) emitDirRename(oldAbs, newAbs string) {
	_ = filepath.WalkDir(newAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		inside, err := filepath.Rel(newAbs, path)
		if err != nil {
			return nil
		}
		w.emitFileRename(filepath.Join(oldAbs, inside), path)
		return nil
	})
}

func hidden(absPath, root string) bool {
	rel, err := filepath.Rel(root, absPath)
	if err != nil {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

package filesystem

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"aliashist/internal/config"
)

// WatchSettings watches the vault root for changes to the settings file and
// reloads it through apply, so a save from the configuration UI takes effect
// in a running daemon without a restart. Blocks until the context is
// cancelled. A settings file that fails to load keeps the previous snapshot.
func WatchSettings(ctx context.Context, vaultPath string, logger *slog.Logger, apply func(config.Settings)) error {
	root := ExpandHome(vaultPath)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(root); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !isSettingsEvent(event) {
				continue
			}
			settings, err := config.Load(root)
			if err != nil {
				logger.Warn("settings reload failed", "error", err)
				continue
			}
			apply(settings)
			logger.Info("settings reloaded")
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watch error", "error", err)
		}
	}
}

// isSettingsEvent reports whether an event touches the settings file.
// Create and Rename cover editors that replace the file atomically.
func isSettingsEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != config.FileName {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

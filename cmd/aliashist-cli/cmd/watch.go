package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aliashist/internal/adapters/filesystem"
	"aliashist/internal/adapters/schedule"
	"aliashist/internal/application"
	"aliashist/internal/config"
)

var watchVerbose bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and record renamed files' prior names as aliases",
	Long: `Watch the vault for renames and record each file's prior names into
its front matter as aliases, debounced so rename bursts settle into a
single write.

Changes saved to the vault's settings file take effect without
restarting the daemon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(vault.Root())
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if watchVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		editor := filesystem.NewEditor(vault)
		tracker := application.NewTracker(vault, editor, schedule.NewWall(), settings, logger)
		defer tracker.Close()

		watcher, err := filesystem.NewWatcher(vault, tracker, logger)
		if err != nil {
			return fmt.Errorf("cannot watch %s: %w", vault.Root(), err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			err := filesystem.WatchSettings(ctx, vault.Root(), logger, tracker.SetSettings)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("settings watch stopped", "error", err)
			}
		}()

		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("shutting down", "pending_dropped", tracker.Pending())
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchVerbose, "verbose", false, "enable debug logging")
	rootCmd.AddCommand(watchCmd)
}

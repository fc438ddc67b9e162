package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/askpdf-labs/askpdf-cli/internal/logger"
	"github.com/askpdf-labs/askpdf-cli/internal/watch"
)

var watchSettle time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Upload new PDF files from a directory automatically",
	Long: `Watches a directory and uploads every PDF that appears in it.

A file is uploaded once it has stopped changing for a settle period, so
files still being copied are never picked up half-written. Press Ctrl+C
to stop watching.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchSettle, "settle", 0, "quiet period before a new file is uploaded (default from configuration)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if uploadService == nil {
		return errors.New("upload service not configured")
	}

	dir := args[0]

	settle := watchSettle
	if settle <= 0 && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			settle = settings.Watch.Settle
		}
	}

	if notifier != nil {
		notifier.Attach(cmd.OutOrStdout())
		defer notifier.Detach()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := watch.New(dir, settle)
	defer watcher.Close()

	files, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	cmd.Printf("Watching %s for new PDF files. Press Ctrl+C to stop.\n", dir)

	for path := range files {
		cmd.Printf("Detected %s\n", filepath.Base(path))
		uploadService.Select([]string{path})
		if _, err := uploadService.Upload(ctx); err != nil {
			logger.Warn("upload of %s not started: %v", path, err)
		}
	}

	cmd.Println("Watch stopped.")
	return nil
}

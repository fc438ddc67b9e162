package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show service health and cleanup schedule",
	Long: `Probes the question-answering service and reports its health, then
shows when each uploaded document will be deleted automatically.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if statusService == nil {
		return errors.New("status service not configured")
	}

	ctx := context.Background()

	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			cmd.Printf("Service: %s\n", settings.API.BaseURL)
		}
	}

	status, err := statusService.Check(ctx)
	if err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	cmd.Printf("Status:  %s\n", status.Status)
	if status.Message != "" {
		cmd.Printf("Message: %s\n", status.Message)
	}
	if status.Version != "" {
		cmd.Printf("Version: %s\n", status.Version)
	}

	// The cleanup schedule is best effort; a healthy service is the
	// main answer.
	cleanup, err := statusService.Cleanup(ctx)
	if err != nil {
		cmd.Printf("\nCleanup schedule unavailable: %v\n", err)
		return nil
	}

	cmd.Println()
	cmd.Printf("Auto-delete interval: %d minutes\n", cleanup.IntervalMinutes)
	cmd.Printf("Stored files: %d\n", cleanup.TotalFiles)
	for _, f := range cleanup.Files {
		cmd.Printf("  %-32s %d min left (uploaded %s)\n",
			f.Name, f.MinutesRemaining, f.UploadedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

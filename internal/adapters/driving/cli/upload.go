package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]...",
	Short: "Upload PDF documents to the service",
	Long: `Uploads one or more PDF documents to the question-answering service.

Files are sent one at a time and each outcome is reported as it happens.
A failed file never aborts the batch. Files in any other format are
dropped before the upload starts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if uploadService == nil {
		return errors.New("upload service not configured")
	}

	if notifier != nil {
		notifier.Attach(cmd.OutOrStdout())
		defer notifier.Detach()
	}

	ctx := context.Background()

	uploadService.Select(args)

	result, err := uploadService.Upload(ctx)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d upload(s) failed", result.Failed, result.Total())
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage uploaded documents",
	Long: `Lists and removes documents held by the question-answering service.

The service's list is authoritative: every listing re-fetches it, and
removals are confirmed by the service before the local view changes.`,
	RunE: runFilesList,
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	RunE:  runFilesList,
}

var filesRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an uploaded document",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesRemove,
}

func init() {
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesRemoveCmd)
	rootCmd.AddCommand(filesCmd)
}

func runFilesList(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	ctx := context.Background()

	if err := registryService.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	records := registryService.Records()
	if len(records) == 0 {
		cmd.Println("No documents uploaded.")
		return nil
	}

	cmd.Printf("Documents (%d):\n\n", len(records))
	for _, r := range records {
		line := fmt.Sprintf("  %-32s %10s", r.Name, r.SizeLabel())
		if label := r.ExpiryLabel(); label != "" {
			line += "   " + label
		}
		cmd.Println(line)
	}

	return nil
}

func runFilesRemove(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	name := args[0]
	ctx := context.Background()

	if err := registryService.Remove(ctx, name); err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	cmd.Printf("Removed %s.\n", name)
	return nil
}

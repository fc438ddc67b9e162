// Package cli implements the askpdf command-line interface.
//
// Commands run against driving ports wired in by main. Tests substitute
// mocks through the same setters.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
	"github.com/askpdf-labs/askpdf-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// Services the commands run against.
var (
	notifier        *EchoNotifier
	registryService driving.RegistryService
	uploadService   driving.UploadService
	chatService     driving.ChatService
	settingsService driving.SettingsService
	statusService   driving.StatusService
)

// initialize builds the service graph once persistent flags are parsed,
// so --server and --verbose can influence the wiring. Set by main.
var initialize func(serverURL string) error

var (
	serverFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "askpdf",
	Short: "Ask questions about your PDF documents",
	Long: `askpdf is a client for a PDF question-answering service.

Upload PDF documents, then ask questions about their contents. Answers
are grounded in the uploaded documents and cite the passages they came
from. The service deletes uploads automatically once a retention window
elapses.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if verboseFlag {
			logger.SetVerbose(true)
		}
		if initialize != nil {
			if err := initialize(serverFlag); err != nil {
				return fmt.Errorf("failed to initialise services: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "base URL of the service (overrides configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetInitializer registers the late service construction hook.
func SetInitializer(fn func(serverURL string) error) {
	initialize = fn
}

// SetNotifier sets the notification sink commands mirror output through.
func SetNotifier(n *EchoNotifier) {
	notifier = n
}

// SetRegistryService sets the document registry implementation.
func SetRegistryService(s driving.RegistryService) {
	registryService = s
}

// SetUploadService sets the upload implementation.
func SetUploadService(s driving.UploadService) {
	uploadService = s
}

// SetChatService sets the chat implementation.
func SetChatService(s driving.ChatService) {
	chatService = s
}

// SetSettingsService sets the settings implementation.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetStatusService sets the status implementation.
func SetStatusService(s driving.StatusService) {
	statusService = s
}

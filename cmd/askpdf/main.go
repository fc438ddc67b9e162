// Command askpdf is a terminal client for a PDF question-answering
// service. It uploads documents, asks questions about their contents,
// and renders cited answers.
package main

import (
	"fmt"
	"os"

	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driven/config/file"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driven/remote"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/cli"
	"github.com/askpdf-labs/askpdf-cli/internal/core/services"
	"github.com/askpdf-labs/askpdf-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetInitializer(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices constructs the service graph behind the driving ports.
// It runs after flag parsing so serverURL can override the configured
// base URL.
func buildServices(serverURL string) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}
	if serverURL != "" {
		settings.API.BaseURL = serverURL
	}

	client, err := remote.NewClient(remote.Config{
		BaseURL: settings.API.BaseURL,
		Timeout: settings.API.Timeout,
	})
	if err != nil {
		return err
	}

	center := services.NewNotificationService(settings.Notify.Lifetime)
	echo := cli.NewEchoNotifier(center)

	registry := services.NewRegistryService(client)
	upload := services.NewUploadService(client, echo, registry, settings.Upload.RequestsPerSecond)
	chat := services.NewChatService(client, echo, registry)
	status := services.NewStatusService(client)

	cli.SetNotifier(echo)
	cli.SetRegistryService(registry)
	cli.SetUploadService(upload)
	cli.SetChatService(chat)
	cli.SetSettingsService(settingsService)
	cli.SetStatusService(status)

	logger.Debug("services initialised, server %s", settings.API.BaseURL)

	return nil
}

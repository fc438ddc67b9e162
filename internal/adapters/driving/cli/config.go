package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// configKeys lists the recognised configuration keys in display order.
var configKeys = []string{
	"api.base_url",
	"api.timeout_seconds",
	"upload.requests_per_second",
	"notify.lifetime_seconds",
	"watch.settle_ms",
	"verbose",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client configuration",
	Long: `Views and edits the askpdf configuration file.

Keys:
  api.base_url                base URL of the service
  api.timeout_seconds         per-request timeout
  upload.requests_per_second  upload rate ceiling
  notify.lifetime_seconds     how long notifications stay visible
  watch.settle_ms             quiet period before a watched file is picked up
  verbose                     enable verbose logging`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all configuration values",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	for _, key := range configKeys {
		value, _ := configValue(settings, key)
		cmd.Printf("%-28s = %s\n", key, value)
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("\nWarning: %v\n", err)
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	value, err := configValue(settings, args[0])
	if err != nil {
		return err
	}

	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applyConfigValue(settings, key, value); err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	path := settingsService.Path()
	if path == "" {
		return errors.New("settings are not backed by a file")
	}

	cmd.Println(path)
	return nil
}

// configValue renders one settings field for display.
func configValue(settings *domain.AppSettings, key string) (string, error) {
	switch key {
	case "api.base_url":
		return settings.API.BaseURL, nil
	case "api.timeout_seconds":
		return strconv.Itoa(int(settings.API.Timeout / time.Second)), nil
	case "upload.requests_per_second":
		return strconv.FormatFloat(settings.Upload.RequestsPerSecond, 'g', -1, 64), nil
	case "notify.lifetime_seconds":
		return strconv.Itoa(int(settings.Notify.Lifetime / time.Second)), nil
	case "watch.settle_ms":
		return strconv.Itoa(int(settings.Watch.Settle / time.Millisecond)), nil
	case "verbose":
		return strconv.FormatBool(settings.Verbose), nil
	default:
		return "", unknownConfigKey(key)
	}
}

// applyConfigValue parses and stores one settings field.
func applyConfigValue(settings *domain.AppSettings, key, value string) error {
	switch key {
	case "api.base_url":
		settings.API.BaseURL = value
	case "api.timeout_seconds":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects a whole number of seconds, got %q", key, value)
		}
		settings.API.Timeout = time.Duration(secs) * time.Second
	case "upload.requests_per_second":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", key, value)
		}
		settings.Upload.RequestsPerSecond = rate
	case "notify.lifetime_seconds":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects a whole number of seconds, got %q", key, value)
		}
		settings.Notify.Lifetime = time.Duration(secs) * time.Second
	case "watch.settle_ms":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects a whole number of milliseconds, got %q", key, value)
		}
		settings.Watch.Settle = time.Duration(ms) * time.Millisecond
	case "verbose":
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		settings.Verbose = verbose
	default:
		return unknownConfigKey(key)
	}
	return nil
}

func unknownConfigKey(key string) error {
	return fmt.Errorf("unknown configuration key %q (valid keys: %s)", key, strings.Join(configKeys, ", "))
}

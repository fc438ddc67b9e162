package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driven/storage/memory"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui"
	"github.com/askpdf-labs/askpdf-cli/internal/core/services"
)

var chatDemo bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat interface",
	Long: `Opens the interactive terminal interface for asking questions about
your uploaded documents.

Controls:
  Tab      - Switch between chat and documents
  Enter    - Send question / confirm
  ↑/k, ↓/j - Navigate documents
  r        - Refresh the document list
  d        - Delete the selected document
  Esc      - Cancel
  Ctrl+C   - Quit

With --demo, the interface runs against an in-memory service seeded
with sample documents. Nothing leaves the machine.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatDemo, "demo", false, "run against an in-memory demo service")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("chat requires an interactive terminal")
	}

	// Recover with a stack trace; a panic inside the alternate screen
	// would otherwise vanish with the terminal state.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat interface: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports, err := chatPorts()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create chat interface: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat interface error: %w", err)
	}

	return nil
}

// chatPorts assembles the driving ports the chat interface runs on,
// either the wired services or a self-contained demo graph.
func chatPorts() (*tui.Ports, error) {
	if chatDemo {
		return demoPorts(), nil
	}

	if chatService == nil || registryService == nil || uploadService == nil || notifier == nil {
		return nil, errors.New("chat services not configured")
	}

	return &tui.Ports{
		Chat:     chatService,
		Registry: registryService,
		Upload:   uploadService,
		Notifier: notifier,
		Status:   statusService,
	}, nil
}

// demoPorts builds a service graph over an in-memory store seeded with
// sample documents.
func demoPorts() *tui.Ports {
	store := memory.NewRemoteStore()

	ctx := context.Background()
	samples := map[string]string{
		"getting-started.pdf": "Welcome to askpdf. Upload documents and ask questions about them.",
		"user-guide.pdf":      "The demo service answers every question with a canned response.",
	}
	for name, content := range samples {
		_, _ = store.Upload(ctx, name, strings.NewReader(content)) //nolint:errcheck // Demo seeding cannot fail
	}

	center := services.NewNotificationService(0)
	registry := services.NewRegistryService(store)

	return &tui.Ports{
		Chat:     services.NewChatService(store, center, registry),
		Registry: registry,
		Upload:   services.NewUploadService(store, center, registry, 0),
		Notifier: center,
		Status:   services.NewStatusService(store),
	}
}

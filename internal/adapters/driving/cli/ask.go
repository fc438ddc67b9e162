package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the uploaded documents",
	Long: `Asks a single question about the uploaded documents and prints the
answer with its sources.

The question can be passed as arguments or piped on stdin:

  askpdf ask "What is the refund policy?"
  echo "What is the refund policy?" | askpdf ask`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	question := strings.Join(args, " ")
	if strings.TrimSpace(question) == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read question from stdin: %w", err)
		}
		question = string(data)
	}
	if strings.TrimSpace(question) == "" {
		return errors.New("no question provided")
	}

	ctx := context.Background()

	// The chat service only accepts questions while documents are
	// loaded, so populate the registry before asking.
	if err := registryService.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh file list: %w", err)
	}
	if !registryService.HasAny() {
		cmd.Println("No documents uploaded yet. Run 'askpdf upload <file.pdf>' first.")
		return domain.ErrNoDocuments
	}

	if !chatService.Ask(ctx, question) {
		return errors.New("question was not accepted")
	}

	answer, ok := lastAssistantMessage(chatService.Transcript())
	if !ok {
		return errors.New("no answer received")
	}
	if answer.Failed {
		return errors.New(answer.Body)
	}

	cmd.Println(answer.Body)

	if answer.HasCitations() {
		cmd.Println()
		cmd.Println("Sources:")
		for i, c := range answer.Citations {
			if c.Page > 0 {
				cmd.Printf("  [%d] %s, page %d\n", i+1, c.Source, c.Page)
			} else {
				cmd.Printf("  [%d] %s\n", i+1, c.Source)
			}
			if c.Excerpt != "" {
				cmd.Printf("      %s\n", c.Excerpt)
			}
		}
	}

	return nil
}

// lastAssistantMessage returns the most recent assistant entry in the
// transcript.
func lastAssistantMessage(transcript []domain.ChatMessage) (domain.ChatMessage, bool) {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Sender == domain.SenderAssistant {
			return transcript[i], true
		}
	}
	return domain.ChatMessage{}, false
}

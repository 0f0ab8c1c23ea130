package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the chat command. The root command also runs the
// TUI, so `ragchat` and `ragchat chat` are equivalent.
var tuiCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat TUI",
	Long: `Launch the interactive terminal chat interface.

Controls:
  Enter    - Send message
  Tab      - Cycle citations on the latest reply
  o        - Open the highlighted citation
  Ctrl+H   - Conversation history
  Esc      - Back / Cancel
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Chat:         chatService,
		Conversation: conversationService,
		Document:     documentService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

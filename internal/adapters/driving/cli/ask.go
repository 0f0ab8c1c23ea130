package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-shot question",
	Long: `Asks a single question and prints the reply with its citations.
The reply is resolved against the built-in knowledge base; nothing is
saved to conversation history.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the reply as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]

	if chatService == nil {
		return errors.New("chat service not configured")
	}

	msg, err := chatService.SendMessage(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}
	if msg == nil {
		return errors.New("empty question")
	}

	if askJSON {
		return outputAskJSON(cmd, msg)
	}

	return outputAskText(cmd, msg)
}

func outputAskJSON(cmd *cobra.Command, msg *domain.Message) error {
	data, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reply: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAskText(cmd *cobra.Command, msg *domain.Message) error {
	cmd.Println(msg.Content)

	if len(msg.Citations) == 0 {
		return nil
	}

	cmd.Println()
	cmd.Println("Citations:")
	for i, citation := range msg.Citations {
		cmd.Printf("  [%d] %s, page %d\n", i+1, citation.DocumentTitle, citation.PageNumber)
		cmd.Printf("      %s\n", citation.Snippet)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved conversations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations, most recent first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [conversation-id]",
	Short: "Print a conversation transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [conversation-id]",
	Short: "Delete a conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	conversations, err := conversationService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing conversations: %w", err)
	}

	if len(conversations) == 0 {
		cmd.Println("No conversations saved.")
		return nil
	}

	cmd.Println("Conversations:")
	cmd.Println()
	for _, conv := range conversations {
		cmd.Printf("  %s  %s (%d messages, updated %s)\n",
			conv.ID, conv.Title, len(conv.Messages),
			conv.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	conv, err := conversationService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting conversation: %w", err)
	}

	printTranscript(cmd, conv)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	if err := conversationService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}

	cmd.Printf("Deleted conversation %s\n", args[0])
	return nil
}

func printTranscript(cmd *cobra.Command, conv *domain.Conversation) {
	cmd.Printf("%s (%s)\n", conv.Title, conv.ID)
	cmd.Println()
	for _, msg := range conv.Messages {
		switch msg.Role {
		case domain.RoleUser:
			cmd.Printf("You: %s\n", msg.Content)
		case domain.RoleAssistant:
			cmd.Printf("Assistant: %s\n", msg.Content)
			for i, citation := range msg.Citations {
				cmd.Printf("  [%d] %s, page %d\n", i+1, citation.DocumentTitle, citation.PageNumber)
			}
		}
		cmd.Println()
	}
}

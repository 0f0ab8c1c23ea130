package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [conversation-id]",
	Short: "Export a conversation as Markdown",
	Long: `Writes a conversation transcript as a Markdown document, with
citations rendered as footnote-style source lists under each reply.
Without --output the transcript is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	conv, err := conversationService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting conversation: %w", err)
	}

	markdown := renderMarkdown(conv)

	if exportOutput == "" {
		cmd.Print(markdown)
		return nil
	}

	if err := os.WriteFile(exportOutput, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOutput, err)
	}
	cmd.Printf("Exported conversation to %s\n", exportOutput)
	return nil
}

func renderMarkdown(conv *domain.Conversation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", conv.Title)
	fmt.Fprintf(&b, "Started %s\n\n", conv.CreatedAt.Format("2006-01-02 15:04"))

	for _, msg := range conv.Messages {
		switch msg.Role {
		case domain.RoleUser:
			fmt.Fprintf(&b, "## You\n\n%s\n\n", msg.Content)
		case domain.RoleAssistant:
			fmt.Fprintf(&b, "## Assistant\n\n%s\n\n", msg.Content)
			if len(msg.Citations) > 0 {
				b.WriteString("Sources:\n\n")
				for i, citation := range msg.Citations {
					fmt.Fprintf(&b, "%d. %s, page %d: %s\n",
						i+1, citation.DocumentTitle, citation.PageNumber, citation.Snippet)
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsPage int

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Browse the knowledge base",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [title]",
	Short: "Show a document page",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

func init() {
	documentsShowCmd.Flags().IntVarP(&documentsPage, "page", "p", 1, "page number to show")
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i, doc := range docs {
		cmd.Printf("  [%d] %s (%d pages)\n", i+1, doc.Title, len(doc.Pages))
	}
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	title := args[0]
	content, err := documentService.GetContent(cmd.Context(), title, documentsPage)
	if err != nil {
		return fmt.Errorf("getting page %d of %q: %w", documentsPage, title, err)
	}

	cmd.Printf("%s, page %d\n\n", title, documentsPage)
	cmd.Println(content)
	return nil
}

// Package cli wires the cobra command tree for the ragchat binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ragchat-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute runs.
var (
	chatService         driving.ChatService
	conversationService driving.ConversationService
	documentService     driving.DocumentService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "ragchat",
	Short: "Chat with a document-backed assistant in your terminal",
	Long: `ragchat is a terminal chat interface backed by a built-in document
knowledge base. Replies cite the document pages they are drawn from, so
every answer can be traced back to its source.

Run without arguments to start the interactive chat TUI, or use the
subcommands for one-shot questions and scripting.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: runTUI,
}

// Services bundles everything the command tree needs.
type Services struct {
	Chat         driving.ChatService
	Conversation driving.ConversationService
	Document     driving.DocumentService
}

// Configure injects the core services. Must be called before Execute.
func Configure(s Services) {
	chatService = s.Chat
	conversationService = s.Conversation
	documentService = s.Document
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

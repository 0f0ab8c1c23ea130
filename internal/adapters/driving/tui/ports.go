// Package tui provides the interactive terminal chat interface for ragchat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat produces assistant replies.
	Chat driving.ChatService

	// Conversation manages conversation histories.
	Conversation driving.ConversationService

	// Document exposes the knowledge base for the citation viewer.
	Document driving.DocumentService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	chat driving.ChatService,
	conversation driving.ConversationService,
	document driving.DocumentService,
) *Ports {
	return &Ports{
		Chat:         chat,
		Conversation: conversation,
		Document:     document,
	}
}

// Validate ensures all required ports are set.
// The document service is optional; without it the citation viewer is
// disabled but chat still works.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Conversation == nil {
		return ErrMissingConversationService
	}
	return nil
}

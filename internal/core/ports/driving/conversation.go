package driving

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// ConversationService manages conversation state for the chat UI.
// It owns the append-only message histories; the chat engine itself
// never mutates conversations.
type ConversationService interface {
	// Create starts a new, empty conversation.
	Create(ctx context.Context) (*domain.Conversation, error)

	// Get retrieves a conversation by ID.
	Get(ctx context.Context, id string) (*domain.Conversation, error)

	// List returns all conversations, most recently updated first.
	List(ctx context.Context) ([]domain.Conversation, error)

	// Delete removes a conversation.
	Delete(ctx context.Context, id string) error

	// Send appends the user message to the conversation, runs one chat
	// turn, and appends the resulting assistant message. The first user
	// message sets the conversation title. On a failed turn the user
	// message is kept and the error returned for the caller to surface.
	Send(ctx context.Context, conversationID, content string) (*domain.Message, error)
}

package driven

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// ConversationStore persists conversations and their messages.
// The default implementation is in-memory; a SQLite implementation
// provides optional history persistence across runs.
type ConversationStore interface {
	// Save stores or updates a conversation with all its messages.
	Save(ctx context.Context, conv *domain.Conversation) error

	// Get retrieves a conversation by ID.
	Get(ctx context.Context, id string) (*domain.Conversation, error)

	// List returns all conversations, most recently updated first.
	List(ctx context.Context) ([]domain.Conversation, error)

	// Delete removes a conversation and its messages.
	Delete(ctx context.Context, id string) error
}

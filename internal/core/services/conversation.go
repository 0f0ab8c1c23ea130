package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ragchat-cli/internal/logger"
)

// ConversationManager owns conversation lifecycles and drives chat
// turns against the configured store.
type ConversationManager struct {
	store driven.ConversationStore
	chat  driving.ChatService

	mu       sync.Mutex
	inFlight map[string]bool
}

var _ driving.ConversationService = (*ConversationManager)(nil)

// NewConversationManager creates a conversation manager.
func NewConversationManager(store driven.ConversationStore, chat driving.ChatService) *ConversationManager {
	return &ConversationManager{
		store:    store,
		chat:     chat,
		inFlight: make(map[string]bool),
	}
}

// Create starts a new, empty conversation and persists it.
func (m *ConversationManager) Create(ctx context.Context) (*domain.Conversation, error) {
	now := time.Now()
	conv := &domain.Conversation{
		ID:        "conv-" + uuid.NewString(),
		Title:     domain.DefaultConversationTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Save(ctx, conv); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}
	logger.Debug("Created conversation %s", conv.ID)
	return conv, nil
}

// Get retrieves a conversation by ID.
func (m *ConversationManager) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	return m.store.Get(ctx, id)
}

// List returns all conversations, most recently updated first.
func (m *ConversationManager) List(ctx context.Context) ([]domain.Conversation, error) {
	return m.store.List(ctx)
}

// Delete removes a conversation and its messages.
func (m *ConversationManager) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.Debug("Deleted conversation %s", id)
	return nil
}

// Send appends the user message, runs one chat turn, and appends the
// assistant reply. The user message is persisted before the turn runs
// so a failed turn keeps it in the history for retry. Blank content is
// ignored. Turns are serialised per conversation.
func (m *ConversationManager) Send(ctx context.Context, conversationID, content string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	m.mu.Lock()
	if m.inFlight[conversationID] {
		m.mu.Unlock()
		return nil, domain.ErrTurnInProgress
	}
	m.inFlight[conversationID] = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		delete(m.inFlight, conversationID)
		m.mu.Unlock()
	}()

	conv, err := m.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	// A failed turn leaves the user message at the tail of the history.
	// Re-sending the same content retries that turn rather than
	// appending the message a second time.
	if !isRetry(conv, content) {
		userMsg := domain.Message{
			ID:        "msg-" + uuid.NewString(),
			Role:      domain.RoleUser,
			Content:   content,
			Timestamp: time.Now(),
		}
		conv.Append(userMsg)
		if err := m.store.Save(ctx, conv); err != nil {
			return nil, fmt.Errorf("save conversation: %w", err)
		}
	}

	reply, err := m.chat.SendMessage(ctx, content)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, nil
	}

	conv.Append(*reply)
	if err := m.store.Save(ctx, conv); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}
	return reply, nil
}

// isRetry reports whether the conversation ends with an unanswered user
// message carrying the same content.
func isRetry(conv *domain.Conversation, content string) bool {
	n := len(conv.Messages)
	if n == 0 {
		return false
	}
	last := conv.Messages[n-1]
	return last.Role == domain.RoleUser && last.Content == content
}

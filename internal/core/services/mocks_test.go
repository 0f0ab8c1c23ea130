package services

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// mockLibrary is a fixed-document library for unit tests.
type mockLibrary struct {
	docs    []domain.Document
	listErr error
}

var _ driven.DocumentLibrary = (*mockLibrary)(nil)

func (m *mockLibrary) List(_ context.Context) ([]domain.Document, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.docs, nil
}

func (m *mockLibrary) Get(_ context.Context, id string) (*domain.Document, error) {
	for i := range m.docs {
		if m.docs[i].ID == id {
			return &m.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockLibrary) GetByTitle(_ context.Context, title string) (*domain.Document, error) {
	for i := range m.docs {
		if m.docs[i].Title == title {
			return &m.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// mockConversationStore records saves for conversation manager tests.
type mockConversationStore struct {
	conversations map[string]*domain.Conversation
	saveErr       error
	saveCount     int
}

var _ driven.ConversationStore = (*mockConversationStore)(nil)

func newMockConversationStore() *mockConversationStore {
	return &mockConversationStore{conversations: make(map[string]*domain.Conversation)}
}

func (m *mockConversationStore) Save(_ context.Context, conv *domain.Conversation) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCount++
	stored := *conv
	stored.Messages = append([]domain.Message(nil), conv.Messages...)
	m.conversations[conv.ID] = &stored
	return nil
}

func (m *mockConversationStore) Get(_ context.Context, id string) (*domain.Conversation, error) {
	conv, ok := m.conversations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	result := *conv
	result.Messages = append([]domain.Message(nil), conv.Messages...)
	return &result, nil
}

func (m *mockConversationStore) List(_ context.Context) ([]domain.Conversation, error) {
	var result []domain.Conversation
	for _, conv := range m.conversations {
		result = append(result, *conv)
	}
	return result, nil
}

func (m *mockConversationStore) Delete(_ context.Context, id string) error {
	if _, ok := m.conversations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.conversations, id)
	return nil
}

// mockChat returns a scripted reply or error.
type mockChat struct {
	reply *domain.Message
	err   error
}

var _ driving.ChatService = (*mockChat)(nil)

func (m *mockChat) Answer(_ string) driving.Answer { return driving.Answer{} }

func (m *mockChat) SendMessage(_ context.Context, query string) (*domain.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.reply != nil {
		return m.reply, nil
	}
	return &domain.Message{
		ID:        "msg-reply",
		Role:      domain.RoleAssistant,
		Content:   "reply to " + query,
		Timestamp: time.Now(),
	}, nil
}

var errStoreBroken = errors.New("store broken")

package mcp

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// mockChatService returns a scripted answer.
type mockChatService struct {
	answer driving.Answer
}

var _ driving.ChatService = (*mockChatService)(nil)

func (m *mockChatService) Answer(_ string) driving.Answer {
	return m.answer
}

func (m *mockChatService) SendMessage(_ context.Context, query string) (*domain.Message, error) {
	return &domain.Message{
		ID:        "msg-1",
		Role:      domain.RoleAssistant,
		Content:   m.answer.Text,
		Citations: m.answer.Citations,
	}, nil
}

// mockDocumentService serves a fixed document set.
type mockDocumentService struct {
	docs []domain.Document
	err  error
}

var _ driving.DocumentService = (*mockDocumentService)(nil)

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockDocumentService) Get(_ context.Context, title string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.docs {
		if m.docs[i].Title == title {
			return &m.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentService) GetContent(ctx context.Context, title string, page int) (string, error) {
	doc, err := m.Get(ctx, title)
	if err != nil {
		return "", err
	}
	p := doc.PageByNumber(page)
	if p == nil {
		return "", domain.ErrNotFound
	}
	return p.Content, nil
}

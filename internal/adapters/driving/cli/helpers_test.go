package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// mockChatService implements driving.ChatService for CLI tests.
type mockChatService struct {
	AnswerFunc      func(query string) driving.Answer
	SendMessageFunc func(ctx context.Context, query string) (*domain.Message, error)
}

func (m *mockChatService) Answer(query string) driving.Answer {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(query)
	}
	return driving.Answer{Text: "ok"}
}

func (m *mockChatService) SendMessage(ctx context.Context, query string) (*domain.Message, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, query)
	}
	return testAssistantMessage(), nil
}

// mockConversationService implements driving.ConversationService for CLI tests.
type mockConversationService struct {
	CreateFunc func(ctx context.Context) (*domain.Conversation, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Conversation, error)
	ListFunc   func(ctx context.Context) ([]domain.Conversation, error)
	DeleteFunc func(ctx context.Context, id string) error
	SendFunc   func(ctx context.Context, conversationID, content string) (*domain.Message, error)
}

func (m *mockConversationService) Create(ctx context.Context) (*domain.Conversation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx)
	}
	return &domain.Conversation{ID: "conv-test", Title: domain.DefaultConversationTitle}, nil
}

func (m *mockConversationService) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return testConversation(), nil
}

func (m *mockConversationService) List(ctx context.Context) ([]domain.Conversation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Conversation{*testConversation()}, nil
}

func (m *mockConversationService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockConversationService) Send(
	ctx context.Context, conversationID, content string,
) (*domain.Message, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, conversationID, content)
	}
	return testAssistantMessage(), nil
}

// mockDocumentService implements driving.DocumentService for CLI tests.
type mockDocumentService struct {
	ListFunc       func(ctx context.Context) ([]domain.Document, error)
	GetFunc        func(ctx context.Context, title string) (*domain.Document, error)
	GetContentFunc func(ctx context.Context, title string, page int) (string, error)
}

func (m *mockDocumentService) List(ctx context.Context) ([]domain.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return testDocuments(), nil
}

func (m *mockDocumentService) Get(ctx context.Context, title string) (*domain.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, title)
	}
	docs := testDocuments()
	for i := range docs {
		if docs[i].Title == title {
			return &docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentService) GetContent(ctx context.Context, title string, page int) (string, error) {
	if m.GetContentFunc != nil {
		return m.GetContentFunc(ctx, title, page)
	}
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

// setupTestServices swaps the package-level services for mocks and
// returns a cleanup function restoring the originals.
func setupTestServices() func() {
	oldChat := chatService
	oldConversation := conversationService
	oldDocument := documentService

	chatService = &mockChatService{}
	conversationService = &mockConversationService{}
	documentService = &mockDocumentService{}

	return func() {
		chatService = oldChat
		conversationService = oldConversation
		documentService = oldDocument
	}
}

func testAssistantMessage() *domain.Message {
	return &domain.Message{
		ID:      "msg-1",
		Role:    domain.RoleAssistant,
		Content: "React is a powerful library for building user interfaces.",
		Citations: []domain.Citation{
			{
				ID:            "cite-doc1-1",
				DocumentTitle: "React Best Practices Guide",
				PageNumber:    1,
				Snippet:       "React is a JavaScript library for building user interfaces.",
			},
		},
		Timestamp: time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC),
	}
}

func testConversation() *domain.Conversation {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Conversation{
		ID:    "conv-1",
		Title: "What is React?",
		Messages: []domain.Message{
			{
				ID:        "msg-0",
				Role:      domain.RoleUser,
				Content:   "What is React?",
				Timestamp: created,
			},
			*testAssistantMessage(),
		},
		CreatedAt: created,
		UpdatedAt: created.Add(5 * time.Second),
	}
}

func testDocuments() []domain.Document {
	return []domain.Document{
		{
			ID:    "doc1",
			Title: "React Best Practices Guide",
			Pages: []domain.Page{
				{Number: 1, Content: "React is a JavaScript library for building user interfaces."},
				{Number: 2, Content: "Follow the Rules of Hooks."},
			},
		},
		{
			ID:    "doc2",
			Title: "TypeScript Handbook",
			Pages: []domain.Page{
				{Number: 1, Content: "TypeScript adds static typing to JavaScript."},
			},
		},
	}
}

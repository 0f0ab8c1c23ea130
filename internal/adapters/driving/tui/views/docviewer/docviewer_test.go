package docviewer

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	docs []domain.Document
}

func (m *MockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.docs, nil
}

func (m *MockDocumentService) Get(_ context.Context, title string) (*domain.Document, error) {
	for i := range m.docs {
		if m.docs[i].Title == title {
			return &m.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockDocumentService) GetContent(ctx context.Context, title string, page int) (string, error) {
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

func testService() *MockDocumentService {
	return &MockDocumentService{
		docs: []domain.Document{
			{
				ID:    "doc1",
				Title: "React Best Practices Guide",
				Pages: []domain.Page{
					{Number: 1, Content: "React is a JavaScript library."},
					{Number: 2, Content: "Follow the Rules of Hooks."},
					{Number: 3, Content: "Prefer composition over inheritance."},
				},
			},
		},
	}
}

func testCitation() domain.Citation {
	return domain.Citation{
		ID:            "cite-doc1-2",
		DocumentTitle: "React Best Practices Guide",
		PageNumber:    2,
	}
}

func openPage(t *testing.T, v *View, cit domain.Citation) *View {
	t.Helper()
	cmd := v.Open(cit)
	require.NotNil(t, cmd)
	loaded, ok := cmd().(messages.PageLoaded)
	require.True(t, ok)
	v, _ = v.Update(loaded)
	return v
}

func TestView_Open_LoadsPage(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)

	cmd := v.Open(testCitation())

	require.NotNil(t, cmd)
	loaded, ok := cmd().(messages.PageLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Equal(t, "React Best Practices Guide", loaded.Title)
	assert.Equal(t, 2, loaded.Page)
	assert.Equal(t, 3, loaded.PageCount)
	assert.Equal(t, "Follow the Rules of Hooks.", loaded.Content)
}

func TestView_Open_UnknownDocument(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)

	cmd := v.Open(domain.Citation{DocumentTitle: "Missing", PageNumber: 1})

	loaded, ok := cmd().(messages.PageLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, domain.ErrNotFound)
}

func TestView_Open_NoService(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(80, 24)

	cmd := v.Open(testCitation())

	loaded, ok := cmd().(messages.PageLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, ErrNoDocumentService)
}

func TestView_Update_PageLoaded(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)

	v = openPage(t, v, testCitation())

	assert.Equal(t, 2, v.Page())
	assert.Equal(t, 3, v.PageCount())
	assert.Equal(t, "Follow the Rules of Hooks.", v.Content())
	assert.NoError(t, v.Err())
}

func TestView_Update_PageLoaded_WithError(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)

	v, _ = v.Update(messages.PageLoaded{Title: "X", Page: 9, Err: domain.ErrNotFound})

	assert.Error(t, v.Err())
}

func TestView_PageNavigation(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)
	v = openPage(t, v, testCitation())

	t.Run("next page", func(t *testing.T) {
		v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRight})
		require.NotNil(t, cmd)
		loaded, ok := cmd().(messages.PageLoaded)
		require.True(t, ok)
		assert.Equal(t, 3, loaded.Page)
		v, _ = v.Update(loaded)
		assert.Equal(t, "Prefer composition over inheritance.", v.Content())
	})

	t.Run("previous page", func(t *testing.T) {
		v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyLeft})
		require.NotNil(t, cmd)
		loaded, ok := cmd().(messages.PageLoaded)
		require.True(t, ok)
		assert.Equal(t, 1, loaded.Page)
		v, _ = v.Update(loaded)
		assert.Equal(t, "React is a JavaScript library.", v.Content())
	})
}

func TestView_PageNavigation_Bounds(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)
	v = openPage(t, v, domain.Citation{DocumentTitle: "React Best Practices Guide", PageNumber: 1})

	t.Run("no previous page before first", func(t *testing.T) {
		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyLeft})
		assert.Nil(t, cmd)
	})

	v = openPage(t, v, domain.Citation{DocumentTitle: "React Best Practices Guide", PageNumber: 3})

	t.Run("no next page after last", func(t *testing.T) {
		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRight})
		assert.Nil(t, cmd)
	})
}

func TestView_Update_Escape_ReturnsToChat(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewChat, changed.View)
}

func TestView_Scrolling(t *testing.T) {
	long := strings.Repeat("line of page content\n", 50)
	svc := &MockDocumentService{
		docs: []domain.Document{
			{
				ID:    "doc2",
				Title: "Long Doc",
				Pages: []domain.Page{{Number: 1, Content: long}},
			},
		},
	}
	v := NewView(nil, svc)
	v.SetDimensions(80, 20)
	v = openPage(t, v, domain.Citation{DocumentTitle: "Long Doc", PageNumber: 1})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.scrollOffset)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, v.maxScrollOffset(), v.scrollOffset)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, v.scrollOffset)
}

func TestView_View(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)
	v = openPage(t, v, testCitation())

	view := v.View()

	assert.Contains(t, view, "React Best Practices Guide")
	assert.Contains(t, view, "page 2 of 3")
	assert.Contains(t, view, "Follow the Rules of Hooks.")
}

func TestView_View_Error(t *testing.T) {
	v := NewView(nil, testService())
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.PageLoaded{Title: "X", Page: 9, Err: domain.ErrNotFound})

	assert.Contains(t, v.View(), "Error:")
}

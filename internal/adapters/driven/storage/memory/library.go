package memory

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
)

// Ensure Library implements the interface.
var _ driven.DocumentLibrary = (*Library)(nil)

// Library is an in-memory implementation of driven.DocumentLibrary.
// The document set is fixed at construction, so reads need no locking.
type Library struct {
	documents []domain.Document
	byID      map[string]int
	byTitle   map[string]int
}

// NewLibrary creates a library over the given documents, preserving
// their order.
func NewLibrary(documents []domain.Document) *Library {
	l := &Library{
		documents: documents,
		byID:      make(map[string]int, len(documents)),
		byTitle:   make(map[string]int, len(documents)),
	}
	for i, doc := range documents {
		l.byID[doc.ID] = i
		l.byTitle[doc.Title] = i
	}
	return l
}

// NewDefaultLibrary creates a library holding the built-in knowledge
// base.
func NewDefaultLibrary() *Library {
	return NewLibrary(DefaultDocuments())
}

// List returns all documents in library order.
func (l *Library) List(_ context.Context) ([]domain.Document, error) {
	docs := make([]domain.Document, len(l.documents))
	copy(docs, l.documents)
	return docs, nil
}

// Get retrieves a document by ID.
func (l *Library) Get(_ context.Context, id string) (*domain.Document, error) {
	i, ok := l.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := l.documents[i]
	return &doc, nil
}

// GetByTitle retrieves a document by its unique title.
func (l *Library) GetByTitle(_ context.Context, title string) (*domain.Document, error) {
	i, ok := l.byTitle[title]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := l.documents[i]
	return &doc, nil
}

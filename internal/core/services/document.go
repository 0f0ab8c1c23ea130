package services

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// DocumentService exposes the knowledge base to document viewers.
type DocumentService struct {
	library driven.DocumentLibrary
}

var _ driving.DocumentService = (*DocumentService)(nil)

// NewDocumentService creates a document service over the library.
func NewDocumentService(library driven.DocumentLibrary) *DocumentService {
	return &DocumentService{library: library}
}

// List returns all documents in library order.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.library.List(ctx)
}

// Get retrieves a document by its unique title.
func (s *DocumentService) Get(ctx context.Context, title string) (*domain.Document, error) {
	return s.library.GetByTitle(ctx, title)
}

// GetContent returns the text of one page. Repeated calls for the
// same page always return the same content.
func (s *DocumentService) GetContent(ctx context.Context, title string, page int) (string, error) {
	doc, err := s.library.GetByTitle(ctx, title)
	if err != nil {
		return "", err
	}
	p := doc.PageByNumber(page)
	if p == nil {
		return "", domain.ErrNotFound
	}
	return p.Content, nil
}

package driving

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// DocumentService exposes the knowledge base to document viewers.
type DocumentService interface {
	// List returns all documents in library order.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by its unique title.
	Get(ctx context.Context, title string) (*domain.Document, error)

	// GetContent returns the text of one page, identified by document
	// title and page number. Returns domain.ErrNotFound on either miss.
	GetContent(ctx context.Context, title string, page int) (string, error)
}

package driven

import (
	"context"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// DocumentLibrary provides read-only access to the knowledge base.
// The library is loaded once at startup and never mutated, so
// implementations need no write operations.
type DocumentLibrary interface {
	// List returns all documents in library order.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// GetByTitle retrieves a document by its unique title.
	GetByTitle(ctx context.Context, title string) (*domain.Document, error)
}

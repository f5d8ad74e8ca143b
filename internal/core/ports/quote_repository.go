package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// QuoteRepository defines persistence for quote requests.
type QuoteRepository interface {
	Create(ctx context.Context, q *domain.QuoteRequest) error
	// List returns all quote requests, newest first.
	List(ctx context.Context) ([]*domain.QuoteRequest, error)
	FindByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
	MarkProcessed(ctx context.Context, id string) (*domain.QuoteRequest, error)
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

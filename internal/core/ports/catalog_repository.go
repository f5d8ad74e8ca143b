package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// CatalogRepository defines persistence for the service catalog.
type CatalogRepository interface {
	List(ctx context.Context) ([]*domain.CourierService, error)
	ListPublished(ctx context.Context) ([]*domain.CourierService, error)
	FindByID(ctx context.Context, id string) (*domain.CourierService, error)
	Create(ctx context.Context, s *domain.CourierService) error
	Update(ctx context.Context, s *domain.CourierService) error
	Delete(ctx context.Context, id string) error
	CountPublished(ctx context.Context) (int64, error)
}

package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// TariffRepository defines persistence operations for rate tariffs.
type TariffRepository interface {
	// FindActive returns every active bracket whose scope matches the given
	// service and zone pair exactly and whose inclusive weight range covers
	// weight. Multiple results indicate overlapping brackets; the caller
	// decides how to handle the ambiguity.
	FindActive(ctx context.Context, serviceType, originZone, destinationZone string, weight float64) ([]*domain.RateTariff, error)
	List(ctx context.Context) ([]*domain.RateTariff, error)
	FindByID(ctx context.Context, id string) (*domain.RateTariff, error)
	Create(ctx context.Context, t *domain.RateTariff) error
	Update(ctx context.Context, t *domain.RateTariff) error
	Delete(ctx context.Context, id string) error
}

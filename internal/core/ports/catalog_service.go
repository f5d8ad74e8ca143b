package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// ServiceInput carries the editable fields of a catalog entry.
type ServiceInput struct {
	Title       string
	Subtitle    string
	Details     string
	IsPublished *bool // nil = keep current value on update, default true on create
}

// CatalogService manages the public service catalog.
type CatalogService interface {
	// PublicServices returns only published entries, for the customer site.
	PublicServices(ctx context.Context) ([]*domain.CourierService, error)
	ListServices(ctx context.Context) ([]*domain.CourierService, error)
	CreateService(ctx context.Context, input ServiceInput) (*domain.CourierService, error)
	UpdateService(ctx context.Context, id string, input ServiceInput) (*domain.CourierService, error)
	DeleteService(ctx context.Context, id string) error
}

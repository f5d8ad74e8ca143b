package ports

import (
	"context"
	"time"

	"github.com/courierly/courier-api/internal/core/domain"
)

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	// ListAll returns every shipment, newest first (admin list view).
	ListAll(ctx context.Context) ([]*domain.Shipment, error)
	// ListByCustomer returns the customer's shipments, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Shipment, error)
	// UpdateStatus persists a new coarse status and, when deliveryDate is
	// non-nil, stamps the delivery date in the same write.
	UpdateStatus(ctx context.Context, id string, status domain.ShipmentStatus, deliveryDate *time.Time) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ShipmentStatus) (int64, error)
}

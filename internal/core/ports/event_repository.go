package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// EventRepository handles the append-only tracking event store.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.TrackingEvent) error
	// ListByShipment returns all events for a shipment in timestamp-ascending
	// order (history display order).
	ListByShipment(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error)
}

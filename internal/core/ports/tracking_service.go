package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// RecordEventInput is the operator's tracking update. Status is free text
// and stored verbatim on the event; the coarse status derivation happens
// inside the service.
type RecordEventInput struct {
	ShipmentID string
	Status     string
	Location   string
	Details    string
}

// RecordEventResult returns the shipment after any status derivation plus
// the newly appended event.
type RecordEventResult struct {
	Shipment *domain.Shipment
	Event    *domain.TrackingEvent
}

// TrackingDetail is the public tracking view keyed by tracking number.
type TrackingDetail struct {
	Shipment *domain.Shipment
	History  []domain.TrackingEvent
}

// TrackingService derives coarse shipment status from free-text events and
// serves the public tracking timeline.
type TrackingService interface {
	RecordEvent(ctx context.Context, input RecordEventInput) (*RecordEventResult, error)
	Track(ctx context.Context, trackingNumber string) (*TrackingDetail, error)
}

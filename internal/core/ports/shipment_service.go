package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// DimensionsInput holds package size in centimeters.
type DimensionsInput struct {
	Length float64
	Width  float64
	Height float64
}

// CreateShipmentInput carries all data needed to create a new shipment.
// Route, weight and service are immutable once created.
type CreateShipmentInput struct {
	CustomerID         string
	OriginCity         string
	OriginCountry      string
	DestinationCity    string
	DestinationCountry string
	ServiceType        string
	WeightKg           float64
	Dimensions         DimensionsInput
	CalculatedRate     float64
}

// ShipmentDetail is the full admin view: the shipment plus its event
// history in timestamp-ascending order, with the derived current flag set
// on the last event.
type ShipmentDetail struct {
	Shipment *domain.Shipment
	History  []domain.TrackingEvent
}

// ShipmentService defines use-case operations for shipments.
type ShipmentService interface {
	// CreateShipment stores the shipment with status PENDING and records the
	// synthetic "SHIPMENT CREATED" event at the origin location.
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	GetShipment(ctx context.Context, id string) (*ShipmentDetail, error)
	ListShipments(ctx context.Context) ([]*domain.Shipment, error)
	ListCustomerShipments(ctx context.Context, customerID string) ([]*domain.Shipment, error)
}

package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/api/metrics"
	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

// initialEventStatus is the synthetic first event recorded for every
// shipment at creation time.
const initialEventStatus = "SHIPMENT CREATED"

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type ShipmentService struct {
	shipments ports.ShipmentRepository
	events    ports.EventRepository
	logger    zerolog.Logger
}

func NewShipmentService(shipments ports.ShipmentRepository, events ports.EventRepository, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{shipments: shipments, events: events, logger: logger}
}

// CreateShipment stores a new shipment in PENDING status and appends the
// synthetic SHIPMENT CREATED event at the origin location. Route, weight
// and service fields are immutable from this point on.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	if input.CustomerID == "" || input.ServiceType == "" ||
		input.OriginCity == "" || input.OriginCountry == "" ||
		input.DestinationCity == "" || input.DestinationCountry == "" {
		return nil, fmt.Errorf("%w: customer, service and route are required", domain.ErrInvalidInput)
	}
	if input.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	shipment := &domain.Shipment{
		ID:                 uuid.NewString(),
		TrackingNumber:     generateTrackingNumber(),
		CustomerID:         input.CustomerID,
		OriginCity:         input.OriginCity,
		OriginCountry:      input.OriginCountry,
		DestinationCity:    input.DestinationCity,
		DestinationCountry: input.DestinationCountry,
		ServiceType:        input.ServiceType,
		WeightKg:           input.WeightKg,
		Dimensions: domain.Dimensions{
			Length: input.Dimensions.Length,
			Width:  input.Dimensions.Width,
			Height: input.Dimensions.Height,
		},
		CurrentStatus:  domain.StatusPending,
		CalculatedRate: input.CalculatedRate,
		Currency:       quoteCurrency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.shipments.Create(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}

	initial := &domain.TrackingEvent{
		ID:         uuid.NewString(),
		ShipmentID: shipment.ID,
		Status:     initialEventStatus,
		Location:   fmt.Sprintf("%s, %s", input.OriginCity, input.OriginCountry),
		Timestamp:  now,
	}
	if err := s.events.Insert(ctx, initial); err != nil {
		// The shipment exists; a missing creation event only costs the
		// first timeline row.
		s.logger.Warn().Err(err).Str("tracking_number", shipment.TrackingNumber).Msg("failed to insert creation event")
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(input.ServiceType).Inc()
	s.logger.Info().
		Str("tracking_number", shipment.TrackingNumber).
		Str("customer_id", input.CustomerID).
		Msg("shipment created")

	return shipment, nil
}

// GetShipment returns the shipment plus its full event history, oldest
// first, with the derived current flag on the newest event.
func (s *ShipmentService) GetShipment(ctx context.Context, id string) (*ports.ShipmentDetail, error) {
	shipment, err := s.shipments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.events.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, fmt.Errorf("shipment history: %w", err)
	}
	domain.MarkCurrent(history)

	return &ports.ShipmentDetail{Shipment: shipment, History: history}, nil
}

// ListShipments returns all shipments, newest first (admin view).
func (s *ShipmentService) ListShipments(ctx context.Context) ([]*domain.Shipment, error) {
	return s.shipments.ListAll(ctx)
}

// ListCustomerShipments returns the shipments owned by one customer.
func (s *ShipmentService) ListCustomerShipments(ctx context.Context, customerID string) ([]*domain.Shipment, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", domain.ErrInvalidInput)
	}
	return s.shipments.ListByCustomer(ctx, customerID)
}

// generateTrackingNumber returns a tracking number in the format
// CLY + 9 random uppercase alphanumerics.
func generateTrackingNumber() string {
	b := make([]byte, 9)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from current nanoseconds
		return fmt.Sprintf("CLY%09X", time.Now().UnixNano()&0xFFFFFFFFF)
	}
	for i := range b {
		b[i] = trackingAlphabet[int(b[i])%len(trackingAlphabet)]
	}
	return "CLY" + string(b)
}

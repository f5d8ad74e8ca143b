package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/api/metrics"
	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

type trackingService struct {
	shipments ports.ShipmentRepository
	events    ports.EventRepository
	locks     *keyMutex
	log       zerolog.Logger
}

// NewTrackingService returns a TrackingService implementation.
func NewTrackingService(
	shipments ports.ShipmentRepository,
	events ports.EventRepository,
	log zerolog.Logger,
) ports.TrackingService {
	return &trackingService{
		shipments: shipments,
		events:    events,
		locks:     newKeyMutex(defaultShards),
		log:       log,
	}
}

// RecordEvent appends one tracking event and derives the shipment's coarse
// status from the free-text event status. Unclassifiable text is not an
// error: the event is recorded as detail-only and the coarse status stays
// put, so recording history always succeeds for the operator.
//
// The whole read-classify-write-append sequence holds a per-shipment lock,
// preventing lost updates when two operators submit events for the same
// shipment at once.
func (s *trackingService) RecordEvent(ctx context.Context, in ports.RecordEventInput) (*ports.RecordEventResult, error) {
	if in.ShipmentID == "" || in.Status == "" || in.Location == "" {
		return nil, fmt.Errorf("%w: status and location are required", domain.ErrInvalidInput)
	}

	unlock := s.locks.Lock(in.ShipmentID)
	defer unlock()

	shipment, err := s.shipments.FindByID(ctx, in.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("record event: %w", err)
	}

	newStatus, changed := domain.ClassifyEventStatus(shipment.CurrentStatus, in.Status)

	// Redundant while classification only yields enum members, kept as a
	// defensive invariant.
	if changed && !newStatus.IsValid() {
		s.log.Warn().Str("derived", string(newStatus)).Msg("classifier produced non-enum status, ignoring")
		changed = false
	}

	if changed {
		var deliveryDate *time.Time
		if newStatus == domain.StatusDelivered && shipment.DeliveryDate == nil {
			now := time.Now().UTC()
			deliveryDate = &now
		}
		if err := s.shipments.UpdateStatus(ctx, shipment.ID, newStatus, deliveryDate); err != nil {
			return nil, fmt.Errorf("record event: update status: %w", err)
		}
		shipment.CurrentStatus = newStatus
		if deliveryDate != nil {
			shipment.DeliveryDate = deliveryDate
		}
	}

	// The event keeps the operator's original wording; only the coarse
	// status on the shipment is normalized.
	event := &domain.TrackingEvent{
		ID:         uuid.NewString(),
		ShipmentID: shipment.ID,
		Status:     in.Status,
		Location:   in.Location,
		Details:    in.Details,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("record event: insert: %w", err)
	}

	metrics.TrackingEventsTotal.WithLabelValues(string(shipment.CurrentStatus)).Inc()
	s.log.Info().
		Str("shipment_id", shipment.ID).
		Str("tracking_number", shipment.TrackingNumber).
		Str("event_status", in.Status).
		Str("current_status", string(shipment.CurrentStatus)).
		Bool("status_changed", changed).
		Msg("tracking event recorded")

	return &ports.RecordEventResult{Shipment: shipment, Event: event}, nil
}

// Track returns the public tracking view: the shipment and its full history
// oldest-first, with the current flag derived onto the newest event.
func (s *trackingService) Track(ctx context.Context, trackingNumber string) (*ports.TrackingDetail, error) {
	if trackingNumber == "" {
		return nil, fmt.Errorf("%w: tracking number is required", domain.ErrInvalidInput)
	}

	shipment, err := s.shipments.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", trackingNumber, err)
	}

	history, err := s.events.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, fmt.Errorf("track %s: history: %w", trackingNumber, err)
	}
	domain.MarkCurrent(history)

	return &ports.TrackingDetail{Shipment: shipment, History: history}, nil
}

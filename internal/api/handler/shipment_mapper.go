package handler

import (
	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateShipmentInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		CustomerID:         req.CustomerID,
		OriginCity:         req.OriginCity,
		OriginCountry:      req.OriginCountry,
		DestinationCity:    req.DestinationCity,
		DestinationCountry: req.DestinationCountry,
		ServiceType:        req.ServiceType,
		WeightKg:           req.Weight,
		Dimensions: ports.DimensionsInput{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		},
		CalculatedRate: req.CalculatedRate,
	}
}

// --- Domain → HTTP response ---

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:                 s.ID,
		TrackingNumber:     s.TrackingNumber,
		CustomerID:         s.CustomerID,
		OriginCity:         s.OriginCity,
		OriginCountry:      s.OriginCountry,
		DestinationCity:    s.DestinationCity,
		DestinationCountry: s.DestinationCountry,
		ServiceType:        s.ServiceType,
		Weight:             s.WeightKg,
		Dimensions: dimensionsResponse{
			Length: s.Dimensions.Length,
			Width:  s.Dimensions.Width,
			Height: s.Dimensions.Height,
		},
		CurrentStatus:  string(s.CurrentStatus),
		DeliveryDate:   s.DeliveryDate,
		CalculatedRate: s.CalculatedRate,
		Currency:       s.Currency,
		CreatedAt:      s.CreatedAt,
	}
}

func toShipmentResponses(shipments []*domain.Shipment) []shipmentResponse {
	out := make([]shipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, toShipmentResponse(s))
	}
	return out
}

func toEventItem(e domain.TrackingEvent) trackingEventItem {
	return trackingEventItem{
		ID:        e.ID,
		Status:    e.Status,
		Location:  e.Location,
		Details:   e.Details,
		Timestamp: e.Timestamp,
		IsCurrent: e.IsCurrent,
	}
}

func toEventItems(events []domain.TrackingEvent) []trackingEventItem {
	out := make([]trackingEventItem, 0, len(events))
	for _, e := range events {
		out = append(out, toEventItem(e))
	}
	return out
}

package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type dimensionsRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type createShipmentRequest struct {
	CustomerID         string            `json:"customer_id"         validate:"required"`
	OriginCity         string            `json:"origin_city"         validate:"required"`
	OriginCountry      string            `json:"origin_country"      validate:"required"`
	DestinationCity    string            `json:"destination_city"    validate:"required"`
	DestinationCountry string            `json:"destination_country" validate:"required"`
	ServiceType        string            `json:"service_type"        validate:"required"`
	Weight             float64           `json:"weight"              validate:"required,gt=0"`
	Dimensions         dimensionsRequest `json:"dimensions"`
	CalculatedRate     float64           `json:"calculated_rate"     validate:"gte=0"`
}

// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal
// service changes.

type dimensionsResponse struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type shipmentResponse struct {
	ID                 string             `json:"id"`
	TrackingNumber     string             `json:"tracking_number"`
	CustomerID         string             `json:"customer_id"`
	OriginCity         string             `json:"origin_city"`
	OriginCountry      string             `json:"origin_country"`
	DestinationCity    string             `json:"destination_city"`
	DestinationCountry string             `json:"destination_country"`
	ServiceType        string             `json:"service_type"`
	Weight             float64            `json:"weight"`
	Dimensions         dimensionsResponse `json:"dimensions"`
	CurrentStatus      string             `json:"current_status"`
	DeliveryDate       *time.Time         `json:"delivery_date,omitempty"`
	CalculatedRate     float64            `json:"calculated_rate"`
	Currency           string             `json:"currency"`
	CreatedAt          time.Time          `json:"created_at"`
}

type trackingEventItem struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsCurrent bool      `json:"is_current"`
}

type shipmentDetailResponse struct {
	Shipment shipmentResponse    `json:"shipment"`
	History  []trackingEventItem `json:"tracking_history"`
}

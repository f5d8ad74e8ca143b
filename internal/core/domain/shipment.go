package domain

import (
	"errors"
	"time"
)

// ShipmentStatus is the coarse lifecycle state of a shipment, as opposed to
// the free-text status strings carried by individual tracking events.
type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "PENDING"
	StatusInTransit      ShipmentStatus = "IN_TRANSIT"
	StatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      ShipmentStatus = "DELIVERED"
	StatusException      ShipmentStatus = "EXCEPTION"
	StatusCancelled      ShipmentStatus = "CANCELLED"
)

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrInvalidInput = errors.New("invalid input")
var ErrForbidden = errors.New("access forbidden")

// IsValid reports whether s is a member of the coarse status enum.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusOutForDelivery,
		StatusDelivered, StatusException, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s blocks automatic regression to IN_TRANSIT.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Dimensions is the physical size of the shipped package, in centimeters.
type Dimensions struct {
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Shipment is the core aggregate. Route, weight and service fields are fixed
// at creation; CurrentStatus is a derived summary owned exclusively by the
// tracking state machine after the initial PENDING.
type Shipment struct {
	ID                 string         `json:"id" bson:"_id,omitempty"`
	TrackingNumber     string         `json:"tracking_number" bson:"tracking_number"`
	CustomerID         string         `json:"customer_id" bson:"customer_id"`
	OriginCity         string         `json:"origin_city" bson:"origin_city"`
	OriginCountry      string         `json:"origin_country" bson:"origin_country"`
	DestinationCity    string         `json:"destination_city" bson:"destination_city"`
	DestinationCountry string         `json:"destination_country" bson:"destination_country"`
	ServiceType        string         `json:"service_type" bson:"service_type"`
	WeightKg           float64        `json:"weight_kg" bson:"weight_kg"`
	Dimensions         Dimensions     `json:"dimensions" bson:"dimensions"`
	CurrentStatus      ShipmentStatus `json:"current_status" bson:"current_status"`
	DeliveryDate       *time.Time     `json:"delivery_date,omitempty" bson:"delivery_date,omitempty"`
	CalculatedRate     float64        `json:"calculated_rate" bson:"calculated_rate"`
	Currency           string         `json:"currency" bson:"currency"`
	CreatedAt          time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" bson:"updated_at"`
}

package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")
var ErrDuplicateService = errors.New("service already exists")

// CourierService is a publicly advertised service offering ("Parcel
// Delivery", "International Freight"). Title is unique across the catalog.
type CourierService struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Subtitle    string    `json:"subtitle" bson:"subtitle"`
	Details     string    `json:"details" bson:"details"`
	IsPublished bool      `json:"is_published" bson:"is_published"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

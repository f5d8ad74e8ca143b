package domain

import (
	"errors"
	"time"
)

var ErrQuoteNotFound = errors.New("quote request not found")

// QuoteRequest is a freight quote inquiry submitted through the public
// contact form. IsProcessed is flipped once by staff and never reset.
type QuoteRequest struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Industry    string    `json:"industry,omitempty" bson:"industry,omitempty"`
	ShipFrom    string    `json:"ship_from" bson:"ship_from"`
	ShipTo      string    `json:"ship_to" bson:"ship_to"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	IsProcessed bool      `json:"is_processed" bson:"is_processed"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

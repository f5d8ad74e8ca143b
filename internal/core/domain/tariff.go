package domain

import (
	"errors"
	"time"
)

// MaxWeightOpenEnd is the sentinel max weight marking a bracket with no
// upper bound.
const MaxWeightOpenEnd = 999999

var ErrNoTariffFound = errors.New("no active tariff found")
var ErrAmbiguousTariff = errors.New("multiple tariffs match")
var ErrTariffNotFound = errors.New("tariff not found")
var ErrDuplicateTariff = errors.New("tariff already exists")

// RateTariff is a priced weight bracket for a specific service and zone
// pair. Zones are flat names ("USA", "Europe"), matched by exact equality.
// The weight range is inclusive on both ends.
type RateTariff struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	ServiceType     string    `json:"service_type" bson:"service_type"`
	OriginZone      string    `json:"origin_zone" bson:"origin_zone"`
	DestinationZone string    `json:"destination_zone" bson:"destination_zone"`
	MinWeight       float64   `json:"min_weight" bson:"min_weight"`
	MaxWeight       float64   `json:"max_weight" bson:"max_weight"`
	BaseCost        float64   `json:"base_cost" bson:"base_cost"`
	CostPerUnit     float64   `json:"cost_per_unit" bson:"cost_per_unit"`
	IsActive        bool      `json:"is_active" bson:"is_active"`
	EffectiveDate   time.Time `json:"effective_date" bson:"effective_date"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// Covers reports whether the bracket's inclusive weight range contains w.
func (t *RateTariff) Covers(w float64) bool {
	return t.MinWeight <= w && w <= t.MaxWeight
}

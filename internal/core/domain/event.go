package domain

import "time"

// TrackingEvent is one append-only entry in a shipment's history. Status
// holds the original free-text description exactly as the operator entered
// it; the coarse classification lives on the shipment, not here. Events are
// never edited or deleted.
type TrackingEvent struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ShipmentID string    `json:"shipment_id" bson:"shipment_id"`
	Status     string    `json:"status" bson:"status"`
	Location   string    `json:"location" bson:"location"`
	Details    string    `json:"details,omitempty" bson:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	// IsCurrent is a read-time view flag set on the newest event when
	// rendering history. It is never persisted.
	IsCurrent bool `json:"is_current" bson:"-"`
}

// MarkCurrent flags the last event of a timestamp-ascending history as the
// current one. It is recomputed on every read rather than stored, so prior
// events never need retroactive updates.
func MarkCurrent(history []TrackingEvent) {
	for i := range history {
		history[i].IsCurrent = false
	}
	if len(history) > 0 {
		history[len(history)-1].IsCurrent = true
	}
}

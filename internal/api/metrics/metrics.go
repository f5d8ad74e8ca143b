// Package metrics defines all custom Prometheus metrics for the courier
// API. It is the single source of truth for metric names, labels, and help
// strings; importing the package registers everything with the default
// registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courier"

// RateQuotesTotal counts rate calculations by outcome.
// Label:
//   - result: "ok", "no_tariff" (no bracket matched) or "ambiguous"
//     (overlapping brackets matched the same query)
var RateQuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_quotes_total",
		Help:      "Total number of rate calculations, labelled by outcome.",
	},
	[]string{"result"},
)

// TrackingEventsTotal counts recorded tracking events.
// Label:
//   - current_status: the shipment's coarse status after the event
//     (e.g. "IN_TRANSIT", unchanged when the event text was unclassifiable)
var TrackingEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_events_total",
		Help:      "Total number of tracking events recorded, by resulting shipment status.",
	},
	[]string{"current_status"},
)

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - service_type: the booked service (e.g. "Express")
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by service type.",
	},
	[]string{"service_type"},
)

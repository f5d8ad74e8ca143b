package domain

import "strings"

// statusRule maps normalized event text to a coarse status by keyword
// containment. The slice below is evaluated top to bottom and the first
// matching rule wins, so the order is load-bearing: "OUT FOR DELIVERY"
// must never fall through to the TRANSIT rule, and DELIVERED outranks
// everything.
type statusRule struct {
	keywords []string
	target   ShipmentStatus
	// movement rules must not drag a terminal shipment back to IN_TRANSIT
	skipWhenTerminal bool
}

var statusRules = []statusRule{
	{keywords: []string{"DELIVERED"}, target: StatusDelivered},
	{keywords: []string{"OUT_FOR_DELIVERY"}, target: StatusOutForDelivery},
	{keywords: []string{"TRANSIT", "DEPARTED", "PICKED_UP"}, target: StatusInTransit, skipWhenTerminal: true},
	{keywords: []string{"CANCELLED"}, target: StatusCancelled},
	{keywords: []string{"EXCEPTION", "HELD"}, target: StatusException},
}

// NormalizeEventStatus converts free-text event status into the internal
// token form: uppercase with spaces replaced by underscores
// ("Picked Up" -> "PICKED_UP").
func NormalizeEventStatus(status string) string {
	return strings.ReplaceAll(strings.ToUpper(status), " ", "_")
}

// ClassifyEventStatus derives the coarse status implied by a free-text
// tracking event, given the shipment's current coarse status. It returns the
// new status and whether any rule matched. When no rule matches, the current
// status is returned unchanged; unclassifiable text is not an error, the
// event is simply detail-only.
func ClassifyEventStatus(current ShipmentStatus, status string) (ShipmentStatus, bool) {
	normalized := NormalizeEventStatus(status)
	for _, rule := range statusRules {
		if !containsAny(normalized, rule.keywords) {
			continue
		}
		if rule.skipWhenTerminal && current.IsTerminal() {
			return current, false
		}
		return rule.target, true
	}
	return current, false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

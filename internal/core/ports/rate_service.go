package ports

import "context"

// RateQuoteInput carries the parameters of a rate calculation. Zone and
// service names are matched by exact, case-sensitive equality.
type RateQuoteInput struct {
	OriginZone      string
	DestinationZone string
	ServiceType     string
	WeightKg        float64
}

// RateQuote is the result of a successful rate calculation.
type RateQuote struct {
	ServiceType    string
	CalculatedRate float64
	Currency       string
	// Details is a human-readable cost breakdown, e.g. "Base: 5.00, Cost per kg: 2.00".
	Details string
}

// RateService computes shipping quotes from the tariff table. Each call is a
// single idempotent read-then-compute; there is no caching and no retry.
type RateService interface {
	CalculateRate(ctx context.Context, input RateQuoteInput) (*RateQuote, error)
}

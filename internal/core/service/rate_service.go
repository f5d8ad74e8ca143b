package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/api/metrics"
	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

// Rate quotes are always priced in USD.
const quoteCurrency = "USD"

// RateService computes shipping quotes by bracket lookup over the tariff
// table. Calculation happens server-side only; clients never price
// themselves.
type RateService struct {
	tariffs ports.TariffRepository
	logger  zerolog.Logger
}

func NewRateService(tariffs ports.TariffRepository, logger zerolog.Logger) *RateService {
	return &RateService{tariffs: tariffs, logger: logger}
}

// CalculateRate finds the active bracket covering the requested combination
// and returns baseCost + costPerUnit*weight rounded half-up to 2 decimals.
//
// No bracket -> domain.ErrNoTariffFound wrapped with the failing combination.
// More than one bracket (overlapping ranges) -> domain.ErrAmbiguousTariff;
// the engine never picks an arbitrary winner.
func (s *RateService) CalculateRate(ctx context.Context, input ports.RateQuoteInput) (*ports.RateQuote, error) {
	if input.OriginZone == "" || input.DestinationZone == "" || input.ServiceType == "" {
		return nil, fmt.Errorf("%w: origin, destination and service are required", domain.ErrInvalidInput)
	}
	if input.WeightKg <= 0 || math.IsNaN(input.WeightKg) || math.IsInf(input.WeightKg, 0) {
		return nil, fmt.Errorf("%w: weight must be a positive number", domain.ErrInvalidInput)
	}

	matches, err := s.tariffs.FindActive(ctx, input.ServiceType, input.OriginZone, input.DestinationZone, input.WeightKg)
	if err != nil {
		s.logger.Error().Err(err).Msg("tariff lookup failed")
		return nil, fmt.Errorf("calculate rate: %w", err)
	}

	switch len(matches) {
	case 0:
		metrics.RateQuotesTotal.WithLabelValues("no_tariff").Inc()
		return nil, fmt.Errorf("%w for this combination (%s, %s to %s, %gkg)",
			domain.ErrNoTariffFound, input.ServiceType, input.OriginZone, input.DestinationZone, input.WeightKg)
	case 1:
		// fall through to calculation
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		s.logger.Warn().
			Strs("tariff_ids", ids).
			Str("service_type", input.ServiceType).
			Str("origin_zone", input.OriginZone).
			Str("destination_zone", input.DestinationZone).
			Float64("weight_kg", input.WeightKg).
			Msg("overlapping tariff brackets match the same query")
		metrics.RateQuotesTotal.WithLabelValues("ambiguous").Inc()
		return nil, fmt.Errorf("%w for %s, %s to %s at %gkg",
			domain.ErrAmbiguousTariff, input.ServiceType, input.OriginZone, input.DestinationZone, input.WeightKg)
	}

	tariff := matches[0]
	total := roundCents(tariff.BaseCost + tariff.CostPerUnit*input.WeightKg)

	metrics.RateQuotesTotal.WithLabelValues("ok").Inc()
	s.logger.Info().
		Str("service_type", input.ServiceType).
		Str("origin_zone", input.OriginZone).
		Str("destination_zone", input.DestinationZone).
		Float64("weight_kg", input.WeightKg).
		Float64("calculated_rate", total).
		Msg("rate calculated")

	return &ports.RateQuote{
		ServiceType:    input.ServiceType,
		CalculatedRate: total,
		Currency:       quoteCurrency,
		Details:        fmt.Sprintf("Base: %.2f, Cost per kg: %.2f", tariff.BaseCost, tariff.CostPerUnit),
	}, nil
}

// roundCents rounds half-up to 2 decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

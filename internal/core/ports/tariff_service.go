package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// TariffInput carries all data to create or update a tariff bracket.
type TariffInput struct {
	ServiceType     string
	OriginZone      string
	DestinationZone string
	MinWeight       float64
	MaxWeight       float64
	BaseCost        float64
	CostPerUnit     float64
	IsActive        bool
}

// TariffService defines admin management of the tariff table.
type TariffService interface {
	ListTariffs(ctx context.Context) ([]*domain.RateTariff, error)
	CreateTariff(ctx context.Context, input TariffInput) (*domain.RateTariff, error)
	UpdateTariff(ctx context.Context, id string, input TariffInput) (*domain.RateTariff, error)
	DeleteTariff(ctx context.Context, id string) error
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

type tariffService struct {
	repo ports.TariffRepository
	log  zerolog.Logger
}

// NewTariffService returns a TariffService implementation.
func NewTariffService(repo ports.TariffRepository, log zerolog.Logger) ports.TariffService {
	return &tariffService{repo: repo, log: log}
}

func (s *tariffService) ListTariffs(ctx context.Context) ([]*domain.RateTariff, error) {
	return s.repo.List(ctx)
}

func (s *tariffService) CreateTariff(ctx context.Context, input ports.TariffInput) (*domain.RateTariff, error) {
	if err := validateTariffInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.RateTariff{
		ID:              uuid.NewString(),
		ServiceType:     input.ServiceType,
		OriginZone:      input.OriginZone,
		DestinationZone: input.DestinationZone,
		MinWeight:       input.MinWeight,
		MaxWeight:       input.MaxWeight,
		BaseCost:        input.BaseCost,
		CostPerUnit:     input.CostPerUnit,
		IsActive:        input.IsActive,
		EffectiveDate:   now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tariff_id", t.ID).
		Str("service_type", t.ServiceType).
		Str("origin_zone", t.OriginZone).
		Str("destination_zone", t.DestinationZone).
		Msg("tariff created")
	return t, nil
}

func (s *tariffService) UpdateTariff(ctx context.Context, id string, input ports.TariffInput) (*domain.RateTariff, error) {
	if err := validateTariffInput(input); err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.ServiceType = input.ServiceType
	t.OriginZone = input.OriginZone
	t.DestinationZone = input.DestinationZone
	t.MinWeight = input.MinWeight
	t.MaxWeight = input.MaxWeight
	t.BaseCost = input.BaseCost
	t.CostPerUnit = input.CostPerUnit
	t.IsActive = input.IsActive
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tariffService) DeleteTariff(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("tariff_id", id).Msg("tariff removed")
	return nil
}

func validateTariffInput(input ports.TariffInput) error {
	if input.ServiceType == "" || input.OriginZone == "" || input.DestinationZone == "" {
		return fmt.Errorf("%w: service type and zones are required", domain.ErrInvalidInput)
	}
	if input.MinWeight < 0 {
		return fmt.Errorf("%w: min weight must not be negative", domain.ErrInvalidInput)
	}
	if input.MaxWeight < input.MinWeight {
		return fmt.Errorf("%w: max weight must not be below min weight", domain.ErrInvalidInput)
	}
	if input.BaseCost < 0 || input.CostPerUnit < 0 {
		return fmt.Errorf("%w: costs must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

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

type catalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

// NewCatalogService returns a CatalogService implementation.
func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) ports.CatalogService {
	return &catalogService{repo: repo, log: log}
}

func (s *catalogService) PublicServices(ctx context.Context) ([]*domain.CourierService, error) {
	return s.repo.ListPublished(ctx)
}

func (s *catalogService) ListServices(ctx context.Context) ([]*domain.CourierService, error) {
	return s.repo.List(ctx)
}

func (s *catalogService) CreateService(ctx context.Context, input ports.ServiceInput) (*domain.CourierService, error) {
	if input.Title == "" || input.Subtitle == "" || input.Details == "" {
		return nil, fmt.Errorf("%w: title, subtitle and details are required", domain.ErrInvalidInput)
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	now := time.Now().UTC()
	svc := &domain.CourierService{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Details:     input.Details,
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.log.Info().Str("title", svc.Title).Msg("catalog service created")
	return svc, nil
}

// UpdateService applies a partial update: empty strings and a nil published
// flag keep the stored values.
func (s *catalogService) UpdateService(ctx context.Context, id string, input ports.ServiceInput) (*domain.CourierService, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		svc.Title = input.Title
	}
	if input.Subtitle != "" {
		svc.Subtitle = input.Subtitle
	}
	if input.Details != "" {
		svc.Details = input.Details
	}
	if input.IsPublished != nil {
		svc.IsPublished = *input.IsPublished
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("service_id", id).Msg("catalog service removed")
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

type statsService struct {
	shipments ports.ShipmentRepository
	quotes    ports.QuoteRepository
	users     ports.AuthRepository
	catalog   ports.CatalogRepository
	log       zerolog.Logger
}

// NewStatsService returns a StatsService aggregating counts across stores.
func NewStatsService(
	shipments ports.ShipmentRepository,
	quotes ports.QuoteRepository,
	users ports.AuthRepository,
	catalog ports.CatalogRepository,
	log zerolog.Logger,
) ports.StatsService {
	return &statsService{shipments: shipments, quotes: quotes, users: users, catalog: catalog, log: log}
}

// DashboardStats gathers the admin dashboard counters. Each count is a
// separate store round-trip; the dashboard tolerates slight skew between
// them.
func (s *statsService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	totalShipments, err := s.shipments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: shipments: %w", err)
	}
	pendingShipments, err := s.shipments.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: pending shipments: %w", err)
	}
	totalQuotes, err := s.quotes.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: quotes: %w", err)
	}
	pendingQuotes, err := s.quotes.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: pending quotes: %w", err)
	}
	totalCustomers, err := s.users.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: customers: %w", err)
	}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	newCustomers, err := s.users.CountCustomersSince(ctx, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: new customers: %w", err)
	}
	publishedServices, err := s.catalog.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: services: %w", err)
	}

	return &ports.DashboardStats{
		TotalShipments:    totalShipments,
		PendingShipments:  pendingShipments,
		TotalQuotes:       totalQuotes,
		PendingQuotes:     pendingQuotes,
		TotalCustomers:    totalCustomers,
		NewCustomersWeek:  newCustomers,
		PublishedServices: publishedServices,
	}, nil
}

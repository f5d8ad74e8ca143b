package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/core/domain"
)

func TestStatsService_Dashboard(t *testing.T) {
	shipments := newStubShipmentRepo()
	quotes := newStubQuoteRepo()
	users := newStubAuthRepo()
	catalog := newStubCatalogRepo()

	seedShipment(shipments, "s1", domain.StatusPending)
	seedShipment(shipments, "s2", domain.StatusPending)
	seedShipment(shipments, "s3", domain.StatusDelivered)

	quotes.byID["q1"] = &domain.QuoteRequest{ID: "q1"}
	quotes.byID["q2"] = &domain.QuoteRequest{ID: "q2", IsProcessed: true}

	now := time.Now().UTC()
	users.byEmail["old@example.com"] = &domain.User{
		Email: "old@example.com", Role: domain.RoleCustomer, CreatedAt: now.AddDate(0, 0, -30),
	}
	users.byEmail["new@example.com"] = &domain.User{
		Email: "new@example.com", Role: domain.RoleCustomer, CreatedAt: now.AddDate(0, 0, -1),
	}
	users.byEmail["admin@example.com"] = &domain.User{
		Email: "admin@example.com", Role: domain.RoleAdmin, CreatedAt: now,
	}

	catalog.byID["c1"] = &domain.CourierService{ID: "c1", IsPublished: true}
	catalog.byID["c2"] = &domain.CourierService{ID: "c2", IsPublished: false}

	svc := NewStatsService(shipments, quotes, users, catalog, zerolog.Nop())
	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalShipments != 3 {
		t.Errorf("TotalShipments: want 3, got %d", stats.TotalShipments)
	}
	if stats.PendingShipments != 2 {
		t.Errorf("PendingShipments: want 2, got %d", stats.PendingShipments)
	}
	if stats.TotalQuotes != 2 {
		t.Errorf("TotalQuotes: want 2, got %d", stats.TotalQuotes)
	}
	if stats.PendingQuotes != 1 {
		t.Errorf("PendingQuotes: want 1, got %d", stats.PendingQuotes)
	}
	if stats.TotalCustomers != 2 {
		t.Errorf("TotalCustomers: want 2 (admin excluded), got %d", stats.TotalCustomers)
	}
	if stats.NewCustomersWeek != 1 {
		t.Errorf("NewCustomersWeek: want 1, got %d", stats.NewCustomersWeek)
	}
	if stats.PublishedServices != 1 {
		t.Errorf("PublishedServices: want 1, got %d", stats.PublishedServices)
	}
}

package ports

import "context"

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalShipments    int64
	PendingShipments  int64
	TotalQuotes       int64
	PendingQuotes     int64
	TotalCustomers    int64
	NewCustomersWeek  int64
	PublishedServices int64
}

// StatsService computes dashboard statistics across the stores.
type StatsService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

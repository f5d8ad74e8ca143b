package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courierly/courier-api/internal/core/ports"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

type shipmentStats struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

type quoteStats struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

type customerStats struct {
	Total       int64 `json:"total"`
	NewThisWeek int64 `json:"new_this_week"`
}

type dashboardResponse struct {
	Shipments         shipmentStats `json:"shipment_stats"`
	Quotes            quoteStats    `json:"quote_stats"`
	Customers         customerStats `json:"customer_stats"`
	ServicesAvailable int64         `json:"services_available"`
}

// Dashboard handles GET /v1/admin/stats.
//
// @Summary      Admin dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Router       /v1/admin/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Shipments:         shipmentStats{Total: stats.TotalShipments, Pending: stats.PendingShipments},
		Quotes:            quoteStats{Total: stats.TotalQuotes, Pending: stats.PendingQuotes},
		Customers:         customerStats{Total: stats.TotalCustomers, NewThisWeek: stats.NewCustomersWeek},
		ServicesAvailable: stats.PublishedServices,
	})
}

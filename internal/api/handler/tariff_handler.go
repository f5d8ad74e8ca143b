package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

// TariffHandler handles admin management of the rate tariff table.
type TariffHandler struct {
	service ports.TariffService
}

func NewTariffHandler(service ports.TariffService) *TariffHandler {
	return &TariffHandler{service: service}
}

type tariffRequest struct {
	ServiceType     string  `json:"service_type"     validate:"required"`
	OriginZone      string  `json:"origin_zone"      validate:"required"`
	DestinationZone string  `json:"destination_zone" validate:"required"`
	MinWeight       float64 `json:"min_weight"       validate:"gte=0"`
	MaxWeight       float64 `json:"max_weight"       validate:"gte=0"`
	BaseCost        float64 `json:"base_cost"        validate:"gte=0"`
	CostPerUnit     float64 `json:"cost_per_unit"    validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

type tariffResponse struct {
	ID              string    `json:"id"`
	ServiceType     string    `json:"service_type"`
	OriginZone      string    `json:"origin_zone"`
	DestinationZone string    `json:"destination_zone"`
	MinWeight       float64   `json:"min_weight"`
	MaxWeight       float64   `json:"max_weight"`
	BaseCost        float64   `json:"base_cost"`
	CostPerUnit     float64   `json:"cost_per_unit"`
	IsActive        bool      `json:"is_active"`
	EffectiveDate   time.Time `json:"effective_date"`
}

func toTariffInput(req tariffRequest) ports.TariffInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return ports.TariffInput{
		ServiceType:     req.ServiceType,
		OriginZone:      req.OriginZone,
		DestinationZone: req.DestinationZone,
		MinWeight:       req.MinWeight,
		MaxWeight:       req.MaxWeight,
		BaseCost:        req.BaseCost,
		CostPerUnit:     req.CostPerUnit,
		IsActive:        active,
	}
}

func toTariffResponse(t *domain.RateTariff) tariffResponse {
	return tariffResponse{
		ID:              t.ID,
		ServiceType:     t.ServiceType,
		OriginZone:      t.OriginZone,
		DestinationZone: t.DestinationZone,
		MinWeight:       t.MinWeight,
		MaxWeight:       t.MaxWeight,
		BaseCost:        t.BaseCost,
		CostPerUnit:     t.CostPerUnit,
		IsActive:        t.IsActive,
		EffectiveDate:   t.EffectiveDate,
	}
}

// List handles GET /v1/admin/rates.
//
// @Summary      List all rate tariffs
// @Tags         rates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   tariffResponse
// @Router       /v1/admin/rates [get]
func (h *TariffHandler) List(c echo.Context) error {
	tariffs, err := h.service.ListTariffs(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]tariffResponse, 0, len(tariffs))
	for _, t := range tariffs {
		out = append(out, toTariffResponse(t))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/admin/rates.
//
// @Summary      Create a rate tariff bracket
// @Tags         rates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tariffRequest  true  "Tariff bracket"
// @Success      201   {object}  tariffResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/rates [post]
func (h *TariffHandler) Create(c echo.Context) error {
	var req tariffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tariff, err := h.service.CreateTariff(c.Request().Context(), toTariffInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTariffResponse(tariff))
}

// Update handles PUT /v1/admin/rates/:id.
//
// @Summary      Update a rate tariff bracket
// @Tags         rates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Tariff ID"
// @Param        body  body      tariffRequest  true  "Tariff bracket"
// @Success      200   {object}  tariffResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/rates/{id} [put]
func (h *TariffHandler) Update(c echo.Context) error {
	var req tariffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tariff, err := h.service.UpdateTariff(c.Request().Context(), c.Param("id"), toTariffInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTariffResponse(tariff))
}

// Delete handles DELETE /v1/admin/rates/:id.
//
// @Summary      Delete a rate tariff bracket
// @Tags         rates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tariff ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/rates/{id} [delete]
func (h *TariffHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTariff(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "tariff removed"})
}

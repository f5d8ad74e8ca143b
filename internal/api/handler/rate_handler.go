package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courierly/courier-api/internal/core/ports"
)

// RateHandler exposes the public rate calculator.
type RateHandler struct {
	service ports.RateService
}

func NewRateHandler(service ports.RateService) *RateHandler {
	return &RateHandler{service: service}
}

type calculateRateRequest struct {
	Origin      string  `json:"origin"      validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	Service     string  `json:"service"     validate:"required"`
	Weight      float64 `json:"weight"      validate:"required,gt=0"`
}

type calculateRateResponse struct {
	ServiceType    string  `json:"service_type"`
	CalculatedRate float64 `json:"calculated_rate"`
	Currency       string  `json:"currency"`
	Details        string  `json:"details"`
}

// Calculate handles POST /v1/rates/calculate.
//
// @Summary      Calculate an instant shipping rate
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body      calculateRateRequest  true  "Route, service and weight"
// @Success      200   {object}  calculateRateResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/rates/calculate [post]
func (h *RateHandler) Calculate(c echo.Context) error {
	var req calculateRateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.service.CalculateRate(c.Request().Context(), ports.RateQuoteInput{
		OriginZone:      req.Origin,
		DestinationZone: req.Destination,
		ServiceType:     req.Service,
		WeightKg:        req.Weight,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, calculateRateResponse{
		ServiceType:    quote.ServiceType,
		CalculatedRate: quote.CalculatedRate,
		Currency:       quote.Currency,
		Details:        quote.Details,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courierly/courier-api/internal/core/ports"
)

// TrackingHandler serves the public tracking timeline and the admin
// tracking-event endpoint.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

type recordEventRequest struct {
	Status   string `json:"status"   validate:"required"`
	Location string `json:"location" validate:"required"`
	Details  string `json:"details"`
}

type recordEventResponse struct {
	Message  string            `json:"message"`
	Shipment shipmentResponse  `json:"shipment"`
	Event    trackingEventItem `json:"event"`
}

type trackingResponse struct {
	Shipment shipmentResponse    `json:"shipment"`
	History  []trackingEventItem `json:"tracking_history"`
}

// Track handles GET /v1/tracking/:tracking_number (public).
//
// @Summary      Get tracking details by tracking number
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. CLY8F2K1Q9ZT)"
// @Success      200              {object}  trackingResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number} [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	detail, err := h.service.Track(c.Request().Context(), c.Param("tracking_number"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trackingResponse{
		Shipment: toShipmentResponse(detail.Shipment),
		History:  toEventItems(detail.History),
	})
}

// RecordEvent handles POST /v1/admin/shipments/:id/track.
//
// @Summary      Record a tracking event on a shipment
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Shipment ID"
// @Param        body  body      recordEventRequest  true  "Event status, location and optional details"
// @Success      201   {object}  recordEventResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/shipments/{id}/track [post]
func (h *TrackingHandler) RecordEvent(c echo.Context) error {
	var req recordEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.RecordEvent(c.Request().Context(), ports.RecordEventInput{
		ShipmentID: c.Param("id"),
		Status:     req.Status,
		Location:   req.Location,
		Details:    req.Details,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, recordEventResponse{
		Message:  "tracking event added",
		Shipment: toShipmentResponse(result.Shipment),
		Event:    toEventItem(*result.Event),
	})
}

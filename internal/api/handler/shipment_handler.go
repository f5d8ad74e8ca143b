package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courierly/courier-api/internal/core/ports"
)

// ShipmentHandler handles admin shipment management and the customer's own
// shipment list.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/admin/shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/admin/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shipment, err := h.service.CreateShipment(c.Request().Context(), toCreateShipmentInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// List handles GET /v1/admin/shipments.
//
// @Summary      List all shipments, newest first
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   shipmentResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	shipments, err := h.service.ListShipments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponses(shipments))
}

// Get handles GET /v1/admin/shipments/:id.
//
// @Summary      Get a shipment with its full tracking history
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shipment ID"
// @Success      200  {object}  shipmentDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	detail, err := h.service.GetShipment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shipmentDetailResponse{
		Shipment: toShipmentResponse(detail.Shipment),
		History:  toEventItems(detail.History),
	})
}

// ListMine handles GET /v1/shipments/my — the logged-in customer's shipments.
//
// @Summary      List the authenticated customer's shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   shipmentResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/shipments/my [get]
func (h *ShipmentHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	shipments, err := h.service.ListCustomerShipments(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponses(shipments))
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courierly/courier-api/internal/core/ports"
)

// CatalogHandler handles the public service catalog and its admin CRUD.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type serviceRequest struct {
	Title       string `json:"title"    validate:"required"`
	Subtitle    string `json:"subtitle" validate:"required"`
	Details     string `json:"details"  validate:"required"`
	IsPublished *bool  `json:"is_published"`
}

// updateServiceRequest allows partial updates: absent fields keep their
// stored values.
type updateServiceRequest struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Details     string `json:"details"`
	IsPublished *bool  `json:"is_published"`
}

// ListPublic handles GET /v1/services (public, published entries only).
//
// @Summary      List published services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.CourierService
// @Router       /v1/services [get]
func (h *CatalogHandler) ListPublic(c echo.Context) error {
	services, err := h.service.PublicServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// List handles GET /v1/admin/services — all entries regardless of publication.
//
// @Summary      List all services (admin)
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CourierService
// @Router       /v1/admin/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Create handles POST /v1/admin/services.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service content"
// @Success      201   {object}  domain.CourierService
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.service.CreateService(c.Request().Context(), ports.ServiceInput{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Details:     req.Details,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /v1/admin/services/:id.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service ID"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.CourierService
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	svc, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), ports.ServiceInput{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Details:     req.Details,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /v1/admin/services/:id.
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "service removed"})
}

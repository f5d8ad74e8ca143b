package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courierly/courier-api/internal/core/ports"
)

// QuoteHandler handles public quote submissions and admin follow-up.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

type quoteRequestBody struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone"`
	Industry    string `json:"industry"`
	ShipFrom    string `json:"ship_from"   validate:"required"`
	ShipTo      string `json:"ship_to"     validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Submit handles POST /v1/quotes (public).
//
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequestBody  true  "Quote inquiry"
// @Success      201   {object}  domain.QuoteRequest
// @Failure      400   {object}  errorResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Submit(c echo.Context) error {
	var req quoteRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.service.SubmitQuote(c.Request().Context(), ports.QuoteRequestInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Industry:    req.Industry,
		ShipFrom:    req.ShipFrom,
		ShipTo:      req.ShipTo,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, quote)
}

// List handles GET /v1/admin/quotes, newest first.
//
// @Summary      List quote requests
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.QuoteRequest
// @Router       /v1/admin/quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	quotes, err := h.service.ListQuotes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotes)
}

// Get handles GET /v1/admin/quotes/:id.
//
// @Summary      Get one quote request
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  domain.QuoteRequest
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/quotes/{id} [get]
func (h *QuoteHandler) Get(c echo.Context) error {
	quote, err := h.service.GetQuote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// Process handles PUT /v1/admin/quotes/:id/process.
//
// @Summary      Mark a quote request processed
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  domain.QuoteRequest
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/quotes/{id}/process [put]
func (h *QuoteHandler) Process(c echo.Context) error {
	quote, err := h.service.ProcessQuote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

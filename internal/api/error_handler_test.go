package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/core/domain"
)

func handleErr(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"no tariff", domain.ErrNoTariffFound, http.StatusNotFound},
		{"ambiguous tariff", domain.ErrAmbiguousTariff, http.StatusConflict},
		{"shipment not found", domain.ErrShipmentNotFound, http.StatusNotFound},
		{"tariff not found", domain.ErrTariffNotFound, http.StatusNotFound},
		{"duplicate tariff", domain.ErrDuplicateTariff, http.StatusConflict},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"quote not found", domain.ErrQuoteNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := handleErr(t, tc.err)
			if rec.Code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if body["error"] == "" {
				t.Error("expected error message in envelope")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedErrorsKeepMessage(t *testing.T) {
	err := fmt.Errorf("%w for this combination (Express, USA to Asia, 5kg)", domain.ErrNoTariffFound)
	rec, body := handleErr(t, err)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != err.Error() {
		t.Errorf("rate errors must surface the failing combination, got %q", body["error"])
	}
}

func TestHTTPErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec, body := handleErr(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "missing authorization header" {
		t.Errorf("unexpected message: %q", body["error"])
	}
}

func TestHTTPErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	rec, body := handleErr(t, errors.New("pq: connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal details must not leak, got %q", body["error"])
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

type stubTrackingService struct {
	recordFn func(ctx context.Context, input ports.RecordEventInput) (*ports.RecordEventResult, error)
	trackFn  func(ctx context.Context, trackingNumber string) (*ports.TrackingDetail, error)
}

func (s *stubTrackingService) RecordEvent(ctx context.Context, input ports.RecordEventInput) (*ports.RecordEventResult, error) {
	return s.recordFn(ctx, input)
}

func (s *stubTrackingService) Track(ctx context.Context, trackingNumber string) (*ports.TrackingDetail, error) {
	return s.trackFn(ctx, trackingNumber)
}

func sampleShipment() *domain.Shipment {
	now := time.Now().UTC()
	return &domain.Shipment{
		ID:                 "ship1",
		TrackingNumber:     "CLY8F2K1Q9ZT",
		CustomerID:         "cust_1",
		OriginCity:         "New York",
		OriginCountry:      "USA",
		DestinationCity:    "Berlin",
		DestinationCountry: "Germany",
		ServiceType:        "Express",
		WeightKg:           2.5,
		CurrentStatus:      domain.StatusInTransit,
		CalculatedRate:     15.00,
		Currency:           "USD",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestTrackingHandler_Track_Success(t *testing.T) {
	shipment := sampleShipment()
	now := time.Now().UTC()
	stub := &stubTrackingService{
		trackFn: func(_ context.Context, trackingNumber string) (*ports.TrackingDetail, error) {
			require.Equal(t, "CLY8F2K1Q9ZT", trackingNumber)
			return &ports.TrackingDetail{
				Shipment: shipment,
				History: []domain.TrackingEvent{
					{ID: "e1", ShipmentID: "ship1", Status: "SHIPMENT CREATED", Location: "New York, USA", Timestamp: now.Add(-time.Hour)},
					{ID: "e2", ShipmentID: "ship1", Status: "Picked Up", Location: "Newark Hub", Timestamp: now, IsCurrent: true},
				},
			}, nil
		},
	}
	h := NewTrackingHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/tracking/:tracking_number")
	c.SetParamNames("tracking_number")
	c.SetParamValues("CLY8F2K1Q9ZT")

	require.NoError(t, h.Track(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	ship, ok := resp["shipment"].(map[string]any)
	require.True(t, ok, "expected shipment in response")
	require.Equal(t, "CLY8F2K1Q9ZT", ship["tracking_number"])
	require.Equal(t, "IN_TRANSIT", ship["current_status"])

	history, ok := resp["tracking_history"].([]any)
	require.True(t, ok, "expected tracking_history in response")
	require.Len(t, history, 2)

	last := history[1].(map[string]any)
	require.Equal(t, "Picked Up", last["status"])
	require.Equal(t, true, last["is_current"])
	first := history[0].(map[string]any)
	require.Equal(t, false, first["is_current"])
}

func TestTrackingHandler_Track_NotFound(t *testing.T) {
	stub := &stubTrackingService{
		trackFn: func(_ context.Context, trackingNumber string) (*ports.TrackingDetail, error) {
			return nil, domain.ErrShipmentNotFound
		},
	}
	h := NewTrackingHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tracking_number")
	c.SetParamValues("CLYMISSING01")

	err := h.Track(c)
	require.True(t, errors.Is(err, domain.ErrShipmentNotFound))
}

func TestTrackingHandler_RecordEvent_Success(t *testing.T) {
	shipment := sampleShipment()
	shipment.CurrentStatus = domain.StatusDelivered
	stub := &stubTrackingService{
		recordFn: func(_ context.Context, input ports.RecordEventInput) (*ports.RecordEventResult, error) {
			require.Equal(t, "ship1", input.ShipmentID)
			require.Equal(t, "Delivered to front desk", input.Status)
			require.Equal(t, "Berlin Depot", input.Location)
			return &ports.RecordEventResult{
				Shipment: shipment,
				Event: &domain.TrackingEvent{
					ID:         "e3",
					ShipmentID: "ship1",
					Status:     input.Status,
					Location:   input.Location,
					Timestamp:  time.Now().UTC(),
				},
			}, nil
		},
	}
	h := NewTrackingHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	body := `{"status":"Delivered to front desk","location":"Berlin Depot"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ship1")

	require.NoError(t, h.RecordEvent(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "tracking event added", resp["message"])

	ship := resp["shipment"].(map[string]any)
	require.Equal(t, "DELIVERED", ship["current_status"])
	event := resp["event"].(map[string]any)
	require.Equal(t, "Delivered to front desk", event["status"])
}

func TestTrackingHandler_RecordEvent_RequiresStatusAndLocation(t *testing.T) {
	h := NewTrackingHandler(&stubTrackingService{
		recordFn: func(context.Context, ports.RecordEventInput) (*ports.RecordEventResult, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	})

	e := echo.New()
	e.Validator = NewValidator()
	for _, body := range []string{`{"location":"Hub"}`, `{"status":"Picked Up"}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("ship1")

		err := h.RecordEvent(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, "body: %s", body)
		require.Equal(t, http.StatusBadRequest, he.Code)
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

func minimalInput(customerID, serviceType string) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		CustomerID:         customerID,
		OriginCity:         "New York",
		OriginCountry:      "USA",
		DestinationCity:    "Berlin",
		DestinationCountry: "Germany",
		ServiceType:        serviceType,
		WeightKg:           2.5,
		CalculatedRate:     15.00,
	}
}

// ---------------------------------------------------------------------------
// CreateShipment tests
// ---------------------------------------------------------------------------

func TestShipmentService_Create_Success(t *testing.T) {
	repo := newStubShipmentRepo()
	evRepo := &stubEventRepo{}
	svc := NewShipmentService(repo, evRepo, zerolog.Nop())

	shipment, err := svc.CreateShipment(context.Background(), minimalInput("cust_1", "Express"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(shipment.TrackingNumber, "CLY") {
		t.Errorf("tracking number format wrong: %s", shipment.TrackingNumber)
	}
	if len(shipment.TrackingNumber) != 12 {
		t.Errorf("expected 12-char tracking number, got %q", shipment.TrackingNumber)
	}
	if shipment.CurrentStatus != domain.StatusPending {
		t.Errorf("expected status %q, got %q", domain.StatusPending, shipment.CurrentStatus)
	}
	if shipment.Currency != "USD" {
		t.Errorf("expected USD, got %q", shipment.Currency)
	}
	if shipment.DeliveryDate != nil {
		t.Error("delivery date must be unset at creation")
	}
	if shipment.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
}

func TestShipmentService_Create_RecordsInitialEvent(t *testing.T) {
	repo := newStubShipmentRepo()
	evRepo := &stubEventRepo{}
	svc := NewShipmentService(repo, evRepo, zerolog.Nop())

	shipment, err := svc.CreateShipment(context.Background(), minimalInput("cust_1", "Express"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, _ := evRepo.ListByShipment(context.Background(), shipment.ID)
	if len(history) != 1 {
		t.Fatalf("expected 1 creation event, got %d", len(history))
	}
	if history[0].Status != "SHIPMENT CREATED" {
		t.Errorf("expected SHIPMENT CREATED, got %q", history[0].Status)
	}
	if history[0].Location != "New York, USA" {
		t.Errorf("expected origin location, got %q", history[0].Location)
	}
}

func TestShipmentService_Create_EventFailureIsNonFatal(t *testing.T) {
	repo := newStubShipmentRepo()
	evRepo := &stubEventRepo{insertErr: errors.New("mongo unavailable")}
	svc := NewShipmentService(repo, evRepo, zerolog.Nop())

	shipment, err := svc.CreateShipment(context.Background(), minimalInput("cust_1", "Express"))
	if err != nil {
		t.Fatalf("creation event failure must be non-fatal, got: %v", err)
	}
	if _, ok := repo.byID[shipment.ID]; !ok {
		t.Error("shipment must still be stored")
	}
}

func TestShipmentService_Create_InvalidInput(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewShipmentService(repo, &stubEventRepo{}, zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*ports.CreateShipmentInput)
	}{
		{"no customer", func(i *ports.CreateShipmentInput) { i.CustomerID = "" }},
		{"no service", func(i *ports.CreateShipmentInput) { i.ServiceType = "" }},
		{"no origin city", func(i *ports.CreateShipmentInput) { i.OriginCity = "" }},
		{"no destination country", func(i *ports.CreateShipmentInput) { i.DestinationCountry = "" }},
		{"zero weight", func(i *ports.CreateShipmentInput) { i.WeightKg = 0 }},
		{"negative weight", func(i *ports.CreateShipmentInput) { i.WeightKg = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := minimalInput("cust_1", "Express")
			tc.mutate(&in)
			if _, err := svc.CreateShipment(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestShipmentService_Create_RepoError(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewShipmentService(repo, &stubEventRepo{}, zerolog.Nop())

	_, err := svc.CreateShipment(context.Background(), minimalInput("cust_1", "Express"))
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

func TestShipmentService_Create_UniqueTrackingNumbers(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewShipmentService(repo, &stubEventRepo{}, zerolog.Nop())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := svc.CreateShipment(context.Background(), minimalInput("cust_1", "Express"))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[s.TrackingNumber] {
			t.Fatalf("duplicate tracking number generated: %s", s.TrackingNumber)
		}
		seen[s.TrackingNumber] = true
	}
}

// ---------------------------------------------------------------------------
// GetShipment / list tests
// ---------------------------------------------------------------------------

func TestShipmentService_Get_WithHistory(t *testing.T) {
	repo := newStubShipmentRepo()
	evRepo := &stubEventRepo{}
	svc := NewShipmentService(repo, evRepo, zerolog.Nop())

	created, err := svc.CreateShipment(context.Background(), minimalInput("cust_1", "Express"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	detail, err := svc.GetShipment(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Shipment.ID != created.ID {
		t.Errorf("wrong shipment: %s", detail.Shipment.ID)
	}
	if len(detail.History) != 1 {
		t.Fatalf("expected creation event in history, got %d entries", len(detail.History))
	}
	if !detail.History[0].IsCurrent {
		t.Error("only event must be flagged current")
	}
}

func TestShipmentService_Get_NotFound(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewShipmentService(repo, &stubEventRepo{}, zerolog.Nop())

	_, err := svc.GetShipment(context.Background(), "missing")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestShipmentService_ListCustomerShipments_FiltersByOwner(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewShipmentService(repo, &stubEventRepo{}, zerolog.Nop())

	_, _ = svc.CreateShipment(context.Background(), minimalInput("cust_1", "Express"))
	_, _ = svc.CreateShipment(context.Background(), minimalInput("cust_1", "Standard"))
	_, _ = svc.CreateShipment(context.Background(), minimalInput("cust_2", "Express"))

	mine, err := svc.ListCustomerShipments(context.Background(), "cust_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 shipments for cust_1, got %d", len(mine))
	}

	all, err := svc.ListShipments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 shipments total, got %d", len(all))
	}
}

func TestShipmentService_ListCustomerShipments_RequiresCustomer(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewShipmentService(repo, &stubEventRepo{}, zerolog.Nop())

	_, err := svc.ListCustomerShipments(context.Background(), "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

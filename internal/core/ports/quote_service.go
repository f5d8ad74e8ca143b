package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// QuoteRequestInput is a public quote form submission.
type QuoteRequestInput struct {
	Name        string
	Email       string
	Phone       string
	Industry    string
	ShipFrom    string
	ShipTo      string
	Category    string
	Description string
}

// QuoteService handles public quote submissions and admin follow-up.
type QuoteService interface {
	// SubmitQuote stores a new quote request. Rapid identical resubmissions
	// (double-clicked forms) are absorbed without creating a second record.
	SubmitQuote(ctx context.Context, input QuoteRequestInput) (*domain.QuoteRequest, error)
	ListQuotes(ctx context.Context) ([]*domain.QuoteRequest, error)
	GetQuote(ctx context.Context, id string) (*domain.QuoteRequest, error)
	ProcessQuote(ctx context.Context, id string) (*domain.QuoteRequest, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courierly/courier-api/internal/core/domain"
	"github.com/courierly/courier-api/internal/core/ports"
)

// SubmissionGuard absorbs rapid duplicate form submissions (Redis-backed).
type SubmissionGuard interface {
	IsDuplicate(ctx context.Context, email, shipFrom, shipTo string) (bool, error)
	Mark(ctx context.Context, email, shipFrom, shipTo string) error
}

type quoteService struct {
	repo  ports.QuoteRepository
	guard SubmissionGuard
	log   zerolog.Logger
}

// NewQuoteService returns a QuoteService implementation.
func NewQuoteService(repo ports.QuoteRepository, guard SubmissionGuard, log zerolog.Logger) ports.QuoteService {
	return &quoteService{repo: repo, guard: guard, log: log}
}

// SubmitQuote stores a public quote request. A guard check absorbs
// double-clicked forms; if the guard itself fails the submission proceeds,
// since losing a lead is worse than storing it twice.
func (s *quoteService) SubmitQuote(ctx context.Context, in ports.QuoteRequestInput) (*domain.QuoteRequest, error) {
	if in.Name == "" || in.Email == "" || in.ShipFrom == "" || in.ShipTo == "" || in.Category == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: name, email, route, category and description are required", domain.ErrInvalidInput)
	}

	dup, err := s.guard.IsDuplicate(ctx, in.Email, in.ShipFrom, in.ShipTo)
	if err != nil {
		s.log.Warn().Err(err).Str("email", in.Email).Msg("submission guard check failed, accepting anyway")
	} else if dup {
		s.log.Debug().Str("email", in.Email).Msg("duplicate quote submission absorbed")
		return nil, fmt.Errorf("%w: an identical quote request was just submitted", domain.ErrInvalidInput)
	}

	quote := &domain.QuoteRequest{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Industry:    in.Industry,
		ShipFrom:    in.ShipFrom,
		ShipTo:      in.ShipTo,
		Category:    in.Category,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if markErr := s.guard.Mark(ctx, in.Email, in.ShipFrom, in.ShipTo); markErr != nil {
		s.log.Warn().Err(markErr).Msg("failed to set submission guard key")
	}

	s.log.Info().Str("quote_id", quote.ID).Str("category", quote.Category).Msg("quote request submitted")
	return quote, nil
}

func (s *quoteService) ListQuotes(ctx context.Context) ([]*domain.QuoteRequest, error) {
	return s.repo.List(ctx)
}

func (s *quoteService) GetQuote(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *quoteService) ProcessQuote(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	quote, err := s.repo.MarkProcessed(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("quote_id", id).Msg("quote marked processed")
	return quote, nil
}

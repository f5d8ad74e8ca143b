package ports

import (
	"context"
	"time"

	"github.com/courierly/courier-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ListCustomers(ctx context.Context) ([]*domain.User, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountCustomersSince(ctx context.Context, since time.Time) (int64, error)
}

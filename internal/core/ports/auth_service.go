package ports

import (
	"context"

	"github.com/courierly/courier-api/internal/core/domain"
)

// AuthService implements registration, login and the admin user list.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ListCustomers(ctx context.Context) ([]*domain.User, error)
}

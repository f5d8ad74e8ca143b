package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/courierly/courier-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	byEmail   map[string]*domain.User
	createErr error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *user
	r.byEmail[user.Email] = &clone
	return &clone, nil
}

func (r *stubAuthRepo) ListCustomers(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byEmail {
		if u.Role == domain.RoleCustomer {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAuthRepo) CountCustomers(_ context.Context) (int64, error) {
	users, _ := r.ListCustomers(context.Background())
	return int64(len(users)), nil
}

func (r *stubAuthRepo) CountCustomersSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, u := range r.byEmail {
		if u.Role == domain.RoleCustomer && u.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

const testSecret = "test-secret"

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	token, user, err := svc.Register(context.Background(), "Ana", "ana@example.com", "supersecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a login token from registration")
	}
	if user.Role != domain.RoleCustomer {
		t.Errorf("new accounts must be customers, got %q", user.Role)
	}
	if user.PasswordHash == "supersecret" {
		t.Error("password must be hashed, not stored verbatim")
	}
	if _, ok := repo.byEmail["ana@example.com"]; !ok {
		t.Error("user not persisted")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "supersecret"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "Other", "ana@example.com", "different")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_TokenCarriesClaims(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	token, user, err := svc.Register(context.Background(), "Ana", "ana@example.com", "supersecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID {
		t.Errorf("sub claim: want %q, got %v", user.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleCustomer {
		t.Errorf("role claim: want %q, got %v", domain.RoleCustomer, claims["role"])
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)
	_, _, _ = svc.Register(context.Background(), "Ana", "ana@example.com", "supersecret")

	token, user, err := svc.Login(context.Background(), "ana@example.com", "supersecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.Email != "ana@example.com" {
		t.Errorf("wrong user: %q", user.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)
	_, _, _ = svc.Register(context.Background(), "Ana", "ana@example.com", "supersecret")

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	// Unknown email must read the same as a wrong password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

package ports

import (
	"context"

	"tasklane/internal/core/domain"
)

type UserRepository interface {
	// Create persists the user, or returns domain.ErrEmailTaken when
	// the email is already registered.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, email, password string) error
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}

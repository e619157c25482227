package ports

import (
	"context"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
)

// RegisterInput carries the data for a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	// Roles holds requested role names. Empty defaults to "user";
	// unrecognized names also fall back to "user".
	Roles []string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns domain.ErrInvalidCredentials for both a wrong password
	// and an unknown email so callers cannot enumerate accounts.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

package ports

import (
	"context"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations translate a duplicate email into domain.ErrUserExists
// and a missing account into domain.ErrUserNotFound.
type UserRepository interface {
	// Create persists a new user. user.Roles carries role names; the
	// implementation stores the catalog identifiers behind them.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

// SeedRoles ensures a row exists for every role name and returns the
// immutable catalog mapping names to storage identifiers. Runs once before
// the first request is served; rows that already exist are left untouched.
func SeedRoles(ctx context.Context, repo ports.RoleRepository, logger zerolog.Logger) (*domain.RoleCatalog, error) {
	ids := make(map[string]string, len(domain.AllRoles))
	for _, name := range domain.AllRoles {
		id, err := repo.Ensure(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("ensure role %q: %w", name, err)
		}
		ids[name] = id
		logger.Debug().Str("role", name).Str("role_id", id).Msg("role seeded")
	}
	return domain.NewRoleCatalog(ids), nil
}

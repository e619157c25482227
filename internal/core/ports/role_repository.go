package ports

import "context"

// RoleRepository persists the fixed role rows backing the RoleCatalog.
type RoleRepository interface {
	// Ensure creates the role row for name if it does not exist yet and
	// returns its storage identifier. Idempotent: an existing row is
	// returned as-is, never an error.
	Ensure(ctx context.Context, name string) (string, error)
}

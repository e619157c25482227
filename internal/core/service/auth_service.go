package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/govjobtrack/jobtrack/internal/api/metrics"
	"github.com/govjobtrack/jobtrack/internal/auth"
	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

// dummyHash is compared against when the email is unknown so that a failed
// login costs one bcrypt comparison regardless of whether the account
// exists (enumeration resistance).
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	codec  *auth.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *auth.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, logger: logger}
}

// Register creates a new account. Requested role names are normalized:
// empty input defaults to "user" and unrecognized names also fall back to
// "user" — a permissive default, not a failure.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Roles:        normalizeRoles(input.Roles),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and mints a session token. A wrong
// password and an unknown email both return domain.ErrInvalidCredentials,
// and the unknown-email path still performs a bcrypt comparison so the two
// are not distinguishable by timing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Mint(user.Email, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{Token: token, User: user}, nil
}

// normalizeRoles maps requested role names onto the closed role set.
func normalizeRoles(requested []string) []string {
	if len(requested) == 0 {
		return []string{domain.RoleUser}
	}
	seen := make(map[string]struct{}, len(requested))
	roles := make([]string, 0, len(requested))
	for _, r := range requested {
		name := domain.RoleUser
		if strings.EqualFold(strings.TrimSpace(r), domain.RoleAdmin) {
			name = domain.RoleAdmin
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		roles = append(roles, name)
	}
	return roles
}

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

var ErrAnonymous = errors.New("no credentials presented")
var ErrUnknownSubject = errors.New("token subject no longer exists")

// Principal is the authenticated identity attached to one request.
// It is derived from a verified token plus a fresh role lookup and lives
// for the duration of that request only.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

// HasRole reports whether the principal holds the given role name.
func (p *Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// PrincipalCache is an optional, time-bounded cache in front of the user
// lookup. Entries must expire on their own; the resolver never invalidates.
type PrincipalCache interface {
	Get(ctx context.Context, email string) (*Principal, bool)
	Set(ctx context.Context, email string, p *Principal)
}

// Resolver turns a raw bearer token into a Principal. Roles are read from
// the user store on every resolution (bounded only by the cache TTL), so a
// role change takes effect without reissuing tokens.
type Resolver struct {
	codec *TokenCodec
	users ports.UserRepository
	cache PrincipalCache // nil disables caching
}

func NewResolver(codec *TokenCodec, users ports.UserRepository, cache PrincipalCache) *Resolver {
	return &Resolver{codec: codec, users: users, cache: cache}
}

// Resolve validates the token and returns the current principal for its
// subject. An empty token is ErrAnonymous; an invalid or expired token
// surfaces the codec's typed error; a verified token whose subject no
// longer exists is ErrUnknownSubject.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrAnonymous
	}

	subject, err := r.codec.Verify(token, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if p, ok := r.cache.Get(ctx, subject); ok {
			return p, nil
		}
	}

	user, err := r.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}

	p := &Principal{UserID: user.ID, Email: user.Email, Roles: user.Roles}
	if r.cache != nil {
		r.cache.Set(ctx, subject, p)
	}
	return p, nil
}

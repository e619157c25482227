package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/govjobtrack/jobtrack/internal/auth"
)

const defaultPrincipalTTL = 30 * time.Second

// PrincipalCache caches resolved principals (id + role names) keyed by
// token subject. Entries carry a short TTL so a role change is visible
// within the TTL at worst; there is no explicit invalidation.
// Key format: principal:<email>
type PrincipalCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPrincipalCache creates a PrincipalCache wrapping the given Redis
// client. A non-positive ttl falls back to 30 seconds.
func NewPrincipalCache(client *redis.Client, ttl time.Duration) *PrincipalCache {
	if ttl <= 0 {
		ttl = defaultPrincipalTTL
	}
	return &PrincipalCache{client: client, ttl: ttl}
}

type cachedPrincipal struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}

// Get returns the cached principal for email, or false on a miss. Redis
// errors are treated as misses so the resolver falls through to the store.
func (c *PrincipalCache) Get(ctx context.Context, email string) (*auth.Principal, bool) {
	raw, err := c.client.Get(ctx, c.key(email)).Bytes()
	if err != nil {
		return nil, false
	}
	var cp cachedPrincipal
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, false
	}
	return &auth.Principal{UserID: cp.UserID, Email: cp.Email, Roles: cp.Roles}, true
}

// Set records a resolved principal (expires after the cache TTL).
func (c *PrincipalCache) Set(ctx context.Context, email string, p *auth.Principal) {
	raw, err := json.Marshal(cachedPrincipal{UserID: p.UserID, Email: p.Email, Roles: p.Roles})
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(email), raw, c.ttl)
}

func (c *PrincipalCache) key(email string) string {
	return "principal:" + email
}

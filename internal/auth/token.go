package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// MinKeyBytes is the minimum signing key length accepted without padding.
const MinKeyBytes = 32

var ErrTokenMalformed = errors.New("token is malformed")
var ErrTokenBadSignature = errors.New("token signature is invalid")
var ErrTokenExpired = errors.New("token is expired")
var ErrTokenUnsupported = errors.New("token algorithm is unsupported")

// DeriveKey turns the configured secret into the process-wide signing key.
// Secrets shorter than MinKeyBytes are zero-padded and a warning is logged;
// the service still starts, but the effective key strength is reduced.
func DeriveKey(secret string, log zerolog.Logger) []byte {
	key := []byte(secret)
	if len(key) >= MinKeyBytes {
		return key
	}
	log.Warn().
		Int("secret_bytes", len(key)).
		Int("min_bytes", MinKeyBytes).
		Msg("JWT secret below minimum length, zero-padding; not suitable for production")
	padded := make([]byte, MinKeyBytes)
	copy(padded, key)
	return padded
}

// TokenCodec mints and verifies HS512-signed session tokens. Tokens carry
// only the subject and the issue/expiry instants; roles are looked up fresh
// on every request by the Resolver.
type TokenCodec struct {
	key []byte
	ttl time.Duration
}

func NewTokenCodec(key []byte, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{key: key, ttl: ttl}
}

// Mint produces a signed token for subject, valid from now until now+ttl.
func (c *TokenCodec) Mint(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.key)
}

// Verify parses and verifies a token as of the given instant and returns its
// subject. Every failure path yields one of the typed token errors; a token
// is expired from the exact expiry instant onwards.
func (c *TokenCodec) Verify(token string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, ErrTokenUnsupported
		}
		return c.key, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenUnsupported):
			return "", ErrTokenUnsupported
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", ErrTokenMalformed
		}
	}
	return claims.Subject, nil
}

// TTL returns the validity window applied to minted tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

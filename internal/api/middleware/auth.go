package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/govjobtrack/jobtrack/internal/auth"
)

const (
	principalKey  = "principal"
	resolveErrKey = "auth_resolve_error"
)

// Authenticate resolves the bearer token (if any) into a principal and
// stores the outcome on the context. It never rejects by itself: public
// routes proceed regardless, and enforcement happens in Require.
func Authenticate(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			p, err := resolver.Resolve(c.Request().Context(), token)
			c.Set(principalKey, p)
			c.Set(resolveErrKey, err)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an Authorization header. A missing
// header or a non-bearer scheme yields "", which resolves as anonymous
// rather than malformed.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Principal returns the principal attached by Authenticate, if any.
func Principal(c echo.Context) (*auth.Principal, bool) {
	p, ok := c.Get(principalKey).(*auth.Principal)
	return p, ok && p != nil
}

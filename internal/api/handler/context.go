package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/govjobtrack/jobtrack/internal/api/middleware"
	"github.com/govjobtrack/jobtrack/internal/auth"
)

// ctxPrincipal extracts the principal attached by the auth middleware and
// fast-fails before any service call. On role-gated routes the Require
// middleware guarantees a principal; an absent one here means the route was
// wired without it, which is rejected rather than papered over.
func ctxPrincipal(c echo.Context) (*auth.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}

// messageResponse is the envelope for confirmation-only responses.
type messageResponse struct {
	Message string `json:"message"`
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/govjobtrack/jobtrack/internal/auth"
	"github.com/govjobtrack/jobtrack/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the auth and domain error taxonomy to deterministic HTTP codes,
//     keeping "unauthenticated" (401) distinct from "forbidden" (403).
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// Authentication failures: no usable identity. Token errors and an
	// absent token all land here; the client is told to (re)authenticate.
	case errors.Is(err, auth.ErrAnonymous),
		errors.Is(err, auth.ErrUnknownSubject),
		errors.Is(err, auth.ErrTokenMalformed),
		errors.Is(err, auth.ErrTokenBadSignature),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenUnsupported):
		return http.StatusUnauthorized, "authentication required"

	// Authorization failure: valid identity, insufficient role.
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden, "access forbidden"

	// Login failures are uniform regardless of whether the email exists.
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"

	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, domain.ErrBookmarkNotFound):
		return http.StatusNotFound, "bookmark not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"

	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "email is already in use"
	case errors.Is(err, domain.ErrBookmarkExists):
		return http.StatusConflict, "job is already bookmarked"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

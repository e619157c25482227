package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/govjobtrack/jobtrack/internal/api/metrics"
	"github.com/govjobtrack/jobtrack/internal/auth"
)

// Require enforces a route-level access requirement against the resolution
// outcome stored by Authenticate. Rejections flow to the central error
// handler, which maps unauthenticated and forbidden to distinct statuses.
func Require(req auth.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, _ := c.Get(principalKey).(*auth.Principal)
			resolveErr, _ := c.Get(resolveErrKey).(error)

			granted, err := auth.Authorize(p, resolveErr, req)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			c.Set(principalKey, granted)
			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		return "forbidden"
	case errors.Is(err, auth.ErrUnknownSubject):
		return "unknown_subject"
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrTokenBadSignature):
		return "bad_signature"
	case errors.Is(err, auth.ErrTokenUnsupported):
		return "unsupported"
	case errors.Is(err, auth.ErrTokenMalformed):
		return "malformed"
	default:
		return "anonymous"
	}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/govjobtrack/jobtrack/internal/auth"
	"github.com/govjobtrack/jobtrack/internal/core/domain"
)

func handle(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the JSON envelope: %v (%q)", err, rec.Body.String())
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_Unauthenticated(t *testing.T) {
	for _, err := range []error{
		auth.ErrAnonymous,
		auth.ErrUnknownSubject,
		auth.ErrTokenMalformed,
		auth.ErrTokenBadSignature,
		auth.ErrTokenExpired,
		auth.ErrTokenUnsupported,
	} {
		code, msg := handle(t, err)
		if code != http.StatusUnauthorized {
			t.Fatalf("%v: got %d, want 401", err, code)
		}
		// One uniform message: the client learns nothing about why.
		if msg != "authentication required" {
			t.Fatalf("%v: got message %q", err, msg)
		}
	}
}

func TestHTTPErrorHandler_Forbidden(t *testing.T) {
	code, msg := handle(t, auth.ErrForbidden)
	if code != http.StatusForbidden || msg != "access forbidden" {
		t.Fatalf("got %d %q, want 403 access forbidden", code, msg)
	}
}

func TestHTTPErrorHandler_InvalidCredentials(t *testing.T) {
	code, msg := handle(t, domain.ErrInvalidCredentials)
	if code != http.StatusUnauthorized || msg != "invalid credentials" {
		t.Fatalf("got %d %q, want 401 invalid credentials", code, msg)
	}
}

func TestHTTPErrorHandler_NotFound(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrJobNotFound, "job not found"},
		{domain.ErrBookmarkNotFound, "bookmark not found"},
		{domain.ErrUserNotFound, "user not found"},
	}
	for _, tc := range cases {
		code, msg := handle(t, tc.err)
		if code != http.StatusNotFound || msg != tc.want {
			t.Fatalf("%v: got %d %q", tc.err, code, msg)
		}
	}
}

func TestHTTPErrorHandler_Conflicts(t *testing.T) {
	code, msg := handle(t, domain.ErrUserExists)
	if code != http.StatusConflict || msg != "email is already in use" {
		t.Fatalf("got %d %q", code, msg)
	}

	code, msg = handle(t, domain.ErrBookmarkExists)
	if code != http.StatusConflict || msg != "job is already bookmarked" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("insert bookmark"), domain.ErrBookmarkExists)
	code, _ := handle(t, wrapped)
	if code != http.StatusConflict {
		t.Fatalf("wrapped conflict: got %d, want 409", code)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := handle(t, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	if code != http.StatusBadRequest || msg != "invalid request body" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorHidden(t *testing.T) {
	code, msg := handle(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

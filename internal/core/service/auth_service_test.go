package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/govjobtrack/jobtrack/internal/auth"
	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

var testTokenKey = []byte("0123456789abcdef0123456789abcdef")

func newAuthService(repo *memUserRepo) *AuthService {
	codec := auth.NewTokenCodec(testTokenKey, time.Hour)
	return NewAuthService(repo, codec, zerolog.Nop())
}

func TestAuthService_Register_DefaultsToUserRole(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     " Alice@Example.COM ",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleUser {
		t.Fatalf("expected default user role, got %v", user.Roles)
	}
	if user.PasswordHash == "s3cret-pass" || user.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_NormalizesRoles(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	cases := []struct {
		name      string
		requested []string
		want      []string
	}{
		{"admin any case", []string{"ADMIN"}, []string{domain.RoleAdmin}},
		{"unknown falls back", []string{"superuser"}, []string{domain.RoleUser}},
		{"deduplicated", []string{"user", "User", "admin"}, []string{domain.RoleUser, domain.RoleAdmin}},
	}
	for i, tc := range cases {
		user, err := svc.Register(context.Background(), ports.RegisterInput{
			Email:    tc.name + "@example.com",
			Password: "s3cret-pass",
			Roles:    tc.requested,
		})
		if err != nil {
			t.Fatalf("case %d register: %v", i, err)
		}
		if len(user.Roles) != len(tc.want) {
			t.Fatalf("case %d: got roles %v, want %v", i, user.Roles, tc.want)
		}
		for k := range tc.want {
			if user.Roles[k] != tc.want[k] {
				t.Fatalf("case %d: got roles %v, want %v", i, user.Roles, tc.want)
			}
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	input := ports.RegisterInput{Email: "bob@example.com", Password: "s3cret-pass"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "carol@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" || result.User.Email != "carol@example.com" {
		t.Fatalf("unexpected result: %+v", result)
	}

	codec := auth.NewTokenCodec(testTokenKey, time.Hour)
	subject, err := codec.Verify(result.Token, time.Now().UTC())
	if err != nil {
		t.Fatalf("verify minted token: %v", err)
	}
	if subject != "carol@example.com" {
		t.Fatalf("token subject %q, want the account email", subject)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "dave@example.com",
		Password: "correct-pass",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "wrong-pass")
	_, unknown := svc.Login(context.Background(), "nobody@example.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, unknown)
	}
}

// End to end: a freshly registered account can log in, its token resolves
// to a principal, and that principal passes user routes but not admin ones.
func TestAuthService_RegisterLoginAuthorize(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Eve",
		Email:     "eve@example.com",
		Password:  "s3cret-pass",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "eve@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	codec := auth.NewTokenCodec(testTokenKey, time.Hour)
	resolver := auth.NewResolver(codec, repo, nil)
	principal, resolveErr := resolver.Resolve(context.Background(), result.Token)

	if _, err := auth.Authorize(principal, resolveErr, auth.Role(domain.RoleUser)); err != nil {
		t.Fatalf("user route rejected: %v", err)
	}
	if _, err := auth.Authorize(principal, resolveErr, auth.Role(domain.RoleAdmin)); !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on admin route, got %v", err)
	}
}

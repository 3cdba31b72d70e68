package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corpops/travel-desk/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubCredentialRepo, email, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleManager)
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Role != domain.RoleManager {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	repo := newStubCredentialRepo()
	seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleEmployee)
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.Login(context.Background(), "  CAROL@Example.COM ", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected email: %s", user.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubCredentialRepo()
	seedUser(t, repo, "dave@example.com", "goodpass", domain.RoleEmployee)
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIsGeneric(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	// Unknown email must be indistinguishable from a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

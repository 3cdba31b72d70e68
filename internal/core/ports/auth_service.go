package ports

import (
	"context"

	"github.com/corpops/travel-desk/internal/core/domain"
)

// AuthService verifies login credentials.
type AuthService interface {
	// Login normalizes the email, looks the user up, and verifies the
	// password. Every failure mode collapses into
	// domain.ErrInvalidCredentials so callers cannot distinguish an unknown
	// email from a wrong password.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corpops/travel-desk/internal/api/metrics"
	"github.com/corpops/travel-desk/internal/core/domain"
	"github.com/corpops/travel-desk/internal/core/ports"
)

// AuthService implements credential verification for login.
type AuthService struct {
	users ports.CredentialRepository
	log   zerolog.Logger
}

func NewAuthService(users ports.CredentialRepository, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Login verifies an email/password pair. The email is lowercased and trimmed
// before lookup. Unknown email and wrong password both surface as
// domain.ErrInvalidCredentials; the caller never learns which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

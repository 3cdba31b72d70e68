package ports

import (
	"context"

	"github.com/corpops/travel-desk/internal/core/domain"
)

// CredentialRepository defines the interface for user identity persistence.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

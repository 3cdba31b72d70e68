package ports

import (
	"context"

	"github.com/corpops/travel-desk/internal/core/domain"
)

// RequestRepository defines the interface for travel request persistence.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.TravelRequest) (*domain.TravelRequest, error)
	FindByID(ctx context.Context, id string) (*domain.TravelRequest, error)
	// ListByRequester returns the given user's requests, newest submission
	// first. When status is non-empty only exact matches are returned.
	ListByRequester(ctx context.Context, requesterID string, status domain.RequestStatus) ([]domain.TravelRequest, error)
	// ListAll returns every request across all requesters, newest first.
	ListAll(ctx context.Context) ([]domain.TravelRequest, error)
	// UpdateDecision overwrites status and manager comment unconditionally.
	UpdateDecision(ctx context.Context, id string, status domain.RequestStatus, comment string) error
	Count(ctx context.Context) (int64, error)
}

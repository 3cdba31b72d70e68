package ports

import (
	"context"
	"time"

	"github.com/corpops/travel-desk/internal/core/domain"
)

// CreateRequestInput carries a validated new-request submission.
type CreateRequestInput struct {
	RequesterID   string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	EstimatedCost float64
	Reason        string
}

// Viewer identifies the actor performing a read.
type Viewer struct {
	UserID string
	Role   string
}

// DecisionInput carries a manager decision on a single request.
type DecisionInput struct {
	RequestID string
	ActorID   string
	ActorRole string
	Action    string
	Comment   string
}

// StatusFilterAll disables status filtering on ListMine.
const StatusFilterAll = "All"

// RequestService is the travel request workflow.
type RequestService interface {
	Create(ctx context.Context, in CreateRequestInput) (*domain.TravelRequest, error)
	ListMine(ctx context.Context, requesterID, statusFilter string) ([]domain.TravelRequest, error)
	ListAll(ctx context.Context) ([]domain.TravelRequest, error)
	// Get enforces the ownership rule: managers see everything, employees
	// only their own requests (domain.ErrForbidden otherwise).
	Get(ctx context.Context, viewer Viewer, id string) (*domain.TravelRequest, error)
	// Decide applies a manager decision. Recognized actions overwrite the
	// status; unrecognized actions leave it untouched but the comment is
	// still overwritten, matching the historical behavior of the workflow.
	Decide(ctx context.Context, in DecisionInput) (*domain.TravelRequest, error)
}

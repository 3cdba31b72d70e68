package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/corpops/travel-desk/internal/api/metrics"
	"github.com/corpops/travel-desk/internal/core/domain"
	"github.com/corpops/travel-desk/internal/core/ports"
)

// RequestService implements the travel request workflow: submission, listing,
// the ownership rule on reads, and manager decisions.
type RequestService struct {
	repo ports.RequestRepository
	log  zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, log zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, log: log}
}

// Create persists a new request in Pending state, owned by the requester and
// stamped with today's date.
func (s *RequestService) Create(ctx context.Context, in ports.CreateRequestInput) (*domain.TravelRequest, error) {
	if in.RequesterID == "" || in.Destination == "" || in.Reason == "" {
		return nil, domain.ErrMissingFields
	}

	req := &domain.TravelRequest{
		RequesterID:   in.RequesterID,
		Destination:   in.Destination,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		EstimatedCost: in.EstimatedCost,
		Reason:        in.Reason,
		Status:        domain.StatusPending,
		SubmittedOn:   today(),
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("requester_id", in.RequesterID).Msg("failed to create travel request")
		return nil, fmt.Errorf("create request: %w", err)
	}

	metrics.RequestsCreatedTotal.Inc()
	s.log.Info().Str("request_id", created.ID).Str("requester_id", created.RequesterID).Msg("travel request created")
	return created, nil
}

// ListMine returns the requester's own requests, newest submission first.
// The filter "All" (or empty) disables status filtering; any other value is
// matched exactly, so an unknown status simply yields an empty list.
func (s *RequestService) ListMine(ctx context.Context, requesterID, statusFilter string) ([]domain.TravelRequest, error) {
	status := domain.RequestStatus("")
	if statusFilter != "" && statusFilter != ports.StatusFilterAll {
		status = domain.RequestStatus(statusFilter)
	}
	return s.repo.ListByRequester(ctx, requesterID, status)
}

// ListAll returns every request across all requesters, newest first. Role
// enforcement for this view lives in the manager route guard.
func (s *RequestService) ListAll(ctx context.Context) ([]domain.TravelRequest, error) {
	return s.repo.ListAll(ctx)
}

// Get returns a single request for display. Managers can view any request;
// everyone else only their own.
func (s *RequestService) Get(ctx context.Context, viewer ports.Viewer, id string) (*domain.TravelRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewer.Role != domain.RoleManager && !req.OwnedBy(viewer.UserID) {
		return nil, domain.ErrForbidden
	}
	return req, nil
}

// Decide applies a manager decision. There is no transition guard: approve,
// deny, and settle are accepted from any current status and overwrite it.
// An unrecognized action leaves the status untouched but the comment is
// still overwritten and persisted.
func (s *RequestService) Decide(ctx context.Context, in ports.DecisionInput) (*domain.TravelRequest, error) {
	if in.ActorRole != domain.RoleManager {
		return nil, domain.ErrForbidden
	}

	req, err := s.repo.FindByID(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	action := in.Action
	if next, ok := domain.StatusForAction(in.Action); ok {
		status = next
	} else {
		action = "unknown"
		s.log.Warn().Str("request_id", in.RequestID).Str("action", in.Action).Msg("unrecognized decision action, status unchanged")
	}

	if err := s.repo.UpdateDecision(ctx, in.RequestID, status, in.Comment); err != nil {
		return nil, fmt.Errorf("decide request: %w", err)
	}

	metrics.DecisionsTotal.WithLabelValues(action).Inc()
	s.log.Info().
		Str("request_id", in.RequestID).
		Str("manager_id", in.ActorID).
		Str("status", string(status)).
		Msg("decision applied")

	req.Status = status
	req.ManagerComment = in.Comment
	return req, nil
}

// today returns the current UTC calendar date with zero time of day.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

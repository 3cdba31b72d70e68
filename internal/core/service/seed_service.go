package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corpops/travel-desk/internal/core/domain"
	"github.com/corpops/travel-desk/internal/core/ports"
)

const seedPassword = "password123"

// SeedService provisions the two demo accounts and, on an empty store, three
// sample requests in distinct states. Every insert is guarded by an existence
// check so re-running the seed never duplicates data.
type SeedService struct {
	users    ports.CredentialRepository
	requests ports.RequestRepository
	log      zerolog.Logger
}

func NewSeedService(users ports.CredentialRepository, requests ports.RequestRepository, log zerolog.Logger) *SeedService {
	return &SeedService{users: users, requests: requests, log: log}
}

// Run is idempotent and safe to call on every startup.
func (s *SeedService) Run(ctx context.Context) error {
	employee, err := s.ensureUser(ctx, "employee@example.com", "Employee User", domain.RoleEmployee)
	if err != nil {
		return fmt.Errorf("seed employee: %w", err)
	}
	if _, err := s.ensureUser(ctx, "manager@example.com", "Manager User", domain.RoleManager); err != nil {
		return fmt.Errorf("seed manager: %w", err)
	}

	n, err := s.requests.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed count requests: %w", err)
	}
	if n > 0 {
		s.log.Debug().Int64("count", n).Msg("travel requests already exist, skipping sample data")
		return nil
	}

	samples := []domain.TravelRequest{
		{
			RequesterID:   employee.ID,
			Destination:   "Paris, France",
			StartDate:     time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
			EstimatedCost: 2500.00,
			Reason:        "Annual Global Tech Conference",
			Status:        domain.StatusPending,
		},
		{
			RequesterID:    employee.ID,
			Destination:    "Tokyo, Japan",
			StartDate:      time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC),
			EstimatedCost:  3200.50,
			Reason:         "Meeting with Asian Pacific partners",
			Status:         domain.StatusApproved,
			ManagerComment: "Budget approved for Q3.",
		},
		{
			RequesterID:    employee.ID,
			Destination:    "Austin, Texas",
			StartDate:      time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2024, 11, 14, 0, 0, 0, 0, time.UTC),
			EstimatedCost:  600.00,
			Reason:         "Domestic Sales Training",
			Status:         domain.StatusDenied,
			ManagerComment: "Travel freeze in effect for domestic trips.",
		},
	}

	for i := range samples {
		samples[i].SubmittedOn = today()
		if _, err := s.requests.Create(ctx, &samples[i]); err != nil {
			return fmt.Errorf("seed sample request %q: %w", samples[i].Destination, err)
		}
	}

	s.log.Info().Int("count", len(samples)).Msg("sample travel requests created")
	return nil
}

func (s *SeedService) ensureUser(ctx context.Context, email, name, role string) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("seed account created")
	return created, nil
}

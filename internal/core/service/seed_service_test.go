package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corpops/travel-desk/internal/core/domain"
)

func TestSeedService_FreshStore(t *testing.T) {
	users := newStubCredentialRepo()
	requests := newStubRequestRepo()
	svc := NewSeedService(users, requests, zerolog.Nop())

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if len(users.users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users.users))
	}

	employee, err := users.FindByEmail(context.Background(), "employee@example.com")
	if err != nil {
		t.Fatalf("employee missing: %v", err)
	}
	if employee.Role != domain.RoleEmployee {
		t.Fatalf("unexpected employee role: %s", employee.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("seed password does not verify: %v", err)
	}

	manager, err := users.FindByEmail(context.Background(), "manager@example.com")
	if err != nil {
		t.Fatalf("manager missing: %v", err)
	}
	if manager.Role != domain.RoleManager {
		t.Fatalf("unexpected manager role: %s", manager.Role)
	}

	if len(requests.requests) != 3 {
		t.Fatalf("expected 3 sample requests, got %d", len(requests.requests))
	}
	seen := map[domain.RequestStatus]bool{}
	for _, req := range requests.requests {
		seen[req.Status] = true
		if req.RequesterID != employee.ID {
			t.Fatalf("sample request not owned by employee: %+v", req)
		}
	}
	for _, want := range []domain.RequestStatus{domain.StatusPending, domain.StatusApproved, domain.StatusDenied} {
		if !seen[want] {
			t.Fatalf("missing sample request with status %s", want)
		}
	}
}

func TestSeedService_Rerun_NoDuplicates(t *testing.T) {
	users := newStubCredentialRepo()
	requests := newStubRequestRepo()
	svc := NewSeedService(users, requests, zerolog.Nop())

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if len(users.users) != 2 {
		t.Fatalf("users duplicated: %d", len(users.users))
	}
	if len(requests.requests) != 3 {
		t.Fatalf("requests duplicated: %d", len(requests.requests))
	}
}

func TestSeedService_KeepsExistingRequests(t *testing.T) {
	users := newStubCredentialRepo()
	requests := newStubRequestRepo()
	if _, err := requests.Create(context.Background(), &domain.TravelRequest{
		RequesterID: "u42",
		Destination: "Madrid, Spain",
		Reason:      "Client visit",
		Status:      domain.StatusPending,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := NewSeedService(users, requests, zerolog.Nop())
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// A non-empty request store suppresses the sample fixtures entirely.
	if len(requests.requests) != 1 {
		t.Fatalf("expected existing request untouched, got %d records", len(requests.requests))
	}
}

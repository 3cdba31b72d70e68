package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/corpops/travel-desk/internal/core/domain"
	"github.com/corpops/travel-desk/internal/core/ports"
)

func validCreateInput(requesterID string) ports.CreateRequestInput {
	return ports.CreateRequestInput{
		RequesterID:   requesterID,
		Destination:   "Lisbon, Portugal",
		StartDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		EstimatedCost: 1200.50,
		Reason:        "Partner onboarding",
	}
}

func TestRequestService_Create_StartsPending(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("expected Pending, got %s", created.Status)
	}
	if created.RequesterID != "u1" {
		t.Fatalf("expected requester u1, got %s", created.RequesterID)
	}
	if created.SubmittedOn.IsZero() {
		t.Fatalf("submitted_on not set")
	}
	if created.SubmittedOn.Hour() != 0 || !created.SubmittedOn.Equal(created.SubmittedOn.Truncate(24*time.Hour)) {
		t.Fatalf("submitted_on should be a bare date, got %v", created.SubmittedOn)
	}
}

func TestRequestService_Create_MissingFields(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	in := validCreateInput("u1")
	in.Destination = ""
	if _, err := svc.Create(context.Background(), in); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Fatalf("expected no records persisted, got %d", n)
	}
}

func TestRequestService_ListMine_OnlyOwnRequests(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	mine := validCreateInput("u1")
	theirs := validCreateInput("u2")
	if _, err := svc.Create(context.Background(), mine); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), theirs); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.ListMine(context.Background(), "u1", ports.StatusFilterAll)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 request, got %d", len(list))
	}
	for _, req := range list {
		if req.RequesterID != "u1" {
			t.Fatalf("foreign request leaked: %+v", req)
		}
	}
}

func TestRequestService_ListMine_StatusFilter(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), validCreateInput("u1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.UpdateDecision(context.Background(), created.ID, domain.StatusApproved, "ok"); err != nil {
		t.Fatalf("update: %v", err)
	}

	approved, err := svc.ListMine(context.Background(), "u1", "Approved")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != created.ID {
		t.Fatalf("unexpected filtered list: %+v", approved)
	}

	// An unknown filter value matches nothing rather than erroring.
	none, err := svc.ListMine(context.Background(), "u1", "Bogus")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty list, got %d", len(none))
	}
}

func TestRequestService_ListAll_NewestFirst(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	older := domain.TravelRequest{
		RequesterID: "u1",
		Destination: "Oslo, Norway",
		Reason:      "Audit",
		Status:      domain.StatusPending,
		SubmittedOn: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	newer := older
	newer.Destination = "Berlin, Germany"
	newer.SubmittedOn = time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	if _, err := repo.Create(context.Background(), &older); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(context.Background(), &newer); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(list))
	}
	if list[0].Destination != "Berlin, Germany" {
		t.Fatalf("expected newest first, got %s", list[0].Destination)
	}
}

func TestRequestService_Get_OwnerAndManager(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), ports.Viewer{UserID: "u1", Role: domain.RoleEmployee}, created.ID); err != nil {
		t.Fatalf("owner should see own request: %v", err)
	}
	if _, err := svc.Get(context.Background(), ports.Viewer{UserID: "u9", Role: domain.RoleManager}, created.ID); err != nil {
		t.Fatalf("manager should see any request: %v", err)
	}
}

func TestRequestService_Get_ForeignRequestForbidden(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), ports.Viewer{UserID: "u2", Role: domain.RoleEmployee}, created.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Record stays untouched.
	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Status != domain.StatusPending || stored.ManagerComment != "" {
		t.Fatalf("record mutated by forbidden read: %+v", stored)
	}
}

func TestRequestService_Get_NotFound(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	if _, err := svc.Get(context.Background(), ports.Viewer{UserID: "u1", Role: domain.RoleManager}, "missing"); err != domain.ErrRequestNotFound {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestRequestService_Decide_Approve(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	decided, err := svc.Decide(context.Background(), ports.DecisionInput{
		RequestID: created.ID,
		ActorID:   "m1",
		ActorRole: domain.RoleManager,
		Action:    domain.ActionApprove,
		Comment:   "ok",
	})
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if decided.Status != domain.StatusApproved || decided.ManagerComment != "ok" {
		t.Fatalf("unexpected decision result: %+v", decided)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Status != domain.StatusApproved || stored.ManagerComment != "ok" {
		t.Fatalf("decision not persisted: %+v", stored)
	}
}

func TestRequestService_Decide_OverwritesPreviousDecision(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Transitions are intentionally unguarded: a settled request can be
	// re-decided and the last action wins.
	steps := []struct {
		action string
		want   domain.RequestStatus
	}{
		{domain.ActionSettle, domain.StatusSettled},
		{domain.ActionDeny, domain.StatusDenied},
		{domain.ActionApprove, domain.StatusApproved},
	}
	for _, step := range steps {
		if _, err := svc.Decide(context.Background(), ports.DecisionInput{
			RequestID: created.ID,
			ActorID:   "m1",
			ActorRole: domain.RoleManager,
			Action:    step.action,
			Comment:   "pass " + step.action,
		}); err != nil {
			t.Fatalf("decide %s failed: %v", step.action, err)
		}
		stored, _ := repo.FindByID(context.Background(), created.ID)
		if stored.Status != step.want {
			t.Fatalf("after %s expected %s, got %s", step.action, step.want, stored.Status)
		}
	}
}

func TestRequestService_Decide_UnknownActionKeepsStatus(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Historical quirk preserved on purpose: an unrecognized action does not
	// change the status, but the comment is still overwritten and persisted.
	decided, err := svc.Decide(context.Background(), ports.DecisionInput{
		RequestID: created.ID,
		ActorID:   "m1",
		ActorRole: domain.RoleManager,
		Action:    "escalate",
		Comment:   "needs VP sign-off",
	})
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if decided.Status != domain.StatusPending {
		t.Fatalf("status should be unchanged, got %s", decided.Status)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Status != domain.StatusPending {
		t.Fatalf("status should be unchanged, got %s", stored.Status)
	}
	if stored.ManagerComment != "needs VP sign-off" {
		t.Fatalf("comment should be overwritten, got %q", stored.ManagerComment)
	}
}

func TestRequestService_Decide_NonManagerForbidden(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Decide(context.Background(), ports.DecisionInput{
		RequestID: created.ID,
		ActorID:   "u1",
		ActorRole: domain.RoleEmployee,
		Action:    domain.ActionApprove,
		Comment:   "self-approval",
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Status != domain.StatusPending || stored.ManagerComment != "" {
		t.Fatalf("record mutated by non-manager: %+v", stored)
	}
}

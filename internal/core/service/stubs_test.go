package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/corpops/travel-desk/internal/core/domain"
)

// In-memory stand-ins for the mongo repositories, shared by the service tests.

type stubCredentialRepo struct {
	users []*domain.User
	seq   int
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{}
}

func (r *stubCredentialRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.users = append(r.users, &clone)
	out := clone
	return &out, nil
}

type stubRequestRepo struct {
	requests []domain.TravelRequest
	seq      int
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{}
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.TravelRequest) (*domain.TravelRequest, error) {
	r.seq++
	clone := *req
	clone.ID = fmt.Sprintf("r%d", r.seq)
	r.requests = append(r.requests, clone)
	out := clone
	return &out, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.TravelRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			clone := req
			return &clone, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (r *stubRequestRepo) ListByRequester(_ context.Context, requesterID string, status domain.RequestStatus) ([]domain.TravelRequest, error) {
	var out []domain.TravelRequest
	for _, req := range r.requests {
		if req.RequesterID != requesterID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, req)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *stubRequestRepo) ListAll(_ context.Context) ([]domain.TravelRequest, error) {
	out := make([]domain.TravelRequest, len(r.requests))
	copy(out, r.requests)
	sortNewestFirst(out)
	return out, nil
}

func (r *stubRequestRepo) UpdateDecision(_ context.Context, id string, status domain.RequestStatus, comment string) error {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			r.requests[i].ManagerComment = comment
			return nil
		}
	}
	return domain.ErrRequestNotFound
}

func (r *stubRequestRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.requests)), nil
}

func sortNewestFirst(reqs []domain.TravelRequest) {
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].SubmittedOn.After(reqs[j].SubmittedOn)
	})
}

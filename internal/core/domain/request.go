package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the review state of a travel request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusDenied   RequestStatus = "Denied"
	StatusSettled  RequestStatus = "Settled"
)

// Decision actions accepted from managers on the request detail form.
const (
	ActionApprove = "approve"
	ActionDeny    = "deny"
	ActionSettle  = "settle"
)

var ErrRequestNotFound = errors.New("travel request not found")
var ErrForbidden = errors.New("access forbidden")
var ErrMissingFields = errors.New("all fields are required")

// StatusForAction maps a decision action to the status it applies. The
// mapping is deliberately unguarded: any action is accepted from any current
// status and the last manager decision wins.
func StatusForAction(action string) (RequestStatus, bool) {
	switch action {
	case ActionApprove:
		return StatusApproved, true
	case ActionDeny:
		return StatusDenied, true
	case ActionSettle:
		return StatusSettled, true
	default:
		return "", false
	}
}

// KnownStatus reports whether s is one of the four request statuses.
func KnownStatus(s RequestStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusSettled:
		return true
	}
	return false
}

// TravelRequest is the core aggregate of the approval workflow. It is created
// by its requester, mutated only through manager decisions, and never deleted.
type TravelRequest struct {
	ID             string        `json:"id"`
	RequesterID    string        `json:"requester_id"`
	Destination    string        `json:"destination"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	EstimatedCost  float64       `json:"estimated_cost"`
	Reason         string        `json:"reason"`
	Status         RequestStatus `json:"status"`
	SubmittedOn    time.Time     `json:"submitted_on"`
	ManagerComment string        `json:"manager_comment,omitempty"`
}

// OwnedBy reports whether the request belongs to the given user id.
func (r *TravelRequest) OwnedBy(userID string) bool {
	return r != nil && r.RequesterID == userID
}

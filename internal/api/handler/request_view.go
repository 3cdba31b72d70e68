package handler

import (
	"github.com/corpops/travel-desk/internal/core/domain"
)

const dateLayout = "2006-01-02"

// requestView is the JSON shape handed to the rendering layer.
type requestView struct {
	ID             string  `json:"id"`
	RequesterID    string  `json:"requester_id"`
	Destination    string  `json:"destination"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	EstimatedCost  float64 `json:"estimated_cost"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	SubmittedOn    string  `json:"submitted_on"`
	ManagerComment string  `json:"manager_comment,omitempty"`
}

func toRequestView(req *domain.TravelRequest) requestView {
	return requestView{
		ID:             req.ID,
		RequesterID:    req.RequesterID,
		Destination:    req.Destination,
		StartDate:      req.StartDate.Format(dateLayout),
		EndDate:        req.EndDate.Format(dateLayout),
		EstimatedCost:  req.EstimatedCost,
		Reason:         req.Reason,
		Status:         string(req.Status),
		SubmittedOn:    req.SubmittedOn.Format(dateLayout),
		ManagerComment: req.ManagerComment,
	}
}

func toRequestViews(reqs []domain.TravelRequest) []requestView {
	out := make([]requestView, 0, len(reqs))
	for i := range reqs {
		out = append(out, toRequestView(&reqs[i]))
	}
	return out
}

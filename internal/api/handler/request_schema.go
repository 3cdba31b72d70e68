package handler

// newRequestForm carries the new-request submission. All five fields are
// required; dates and cost arrive as text and are parsed after the
// required-field check so each failure gets its own notice.
type newRequestForm struct {
	Destination   string `form:"destination"    validate:"required"`
	StartDate     string `form:"start_date"     validate:"required"`
	EndDate       string `form:"end_date"       validate:"required"`
	EstimatedCost string `form:"estimated_cost" validate:"required"`
	Reason        string `form:"reason"         validate:"required"`
}

// decisionForm carries a manager decision. The action is deliberately not
// constrained here: unrecognized values flow through to the workflow, which
// preserves the historical comment-overwrite behavior.
type decisionForm struct {
	Action  string `form:"action"`
	Comment string `form:"comment"`
}

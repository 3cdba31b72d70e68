package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corpops/travel-desk/internal/core/domain"
	"github.com/corpops/travel-desk/internal/core/ports"
)

// RequestHandler handles the travel request endpoints.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type newRequestView struct {
	User  *domain.User `json:"user"`
	Flash *Flash       `json:"flash,omitempty"`
}

type requestListView struct {
	User         *domain.User  `json:"user"`
	StatusFilter string        `json:"status_filter,omitempty"`
	Requests     []requestView `json:"requests"`
	Flash        *Flash        `json:"flash,omitempty"`
}

type requestDetailView struct {
	User    *domain.User `json:"user"`
	Request requestView  `json:"request"`
	Flash   *Flash       `json:"flash,omitempty"`
}

// NewRequestForm handles GET /requests/new, the entry form view.
//
// @Summary      New request entry form
// @Tags         requests
// @Produce      json
// @Success      200  {object}  newRequestView
// @Router       /requests/new [get]
func (h *RequestHandler) NewRequestForm(c echo.Context) error {
	return c.JSON(http.StatusOK, newRequestView{User: Actor(c), Flash: TakeFlash(c)})
}

// Create handles POST /requests/new. On any validation failure nothing is
// persisted and the caller is sent back to the entry form with a notice;
// previously entered values are not preserved.
//
// @Summary      Submit a travel request
// @Tags         requests
// @Accept       x-www-form-urlencoded
// @Param        destination     formData  string  true  "Destination"
// @Param        start_date      formData  string  true  "Start date (YYYY-MM-DD)"
// @Param        end_date        formData  string  true  "End date (YYYY-MM-DD)"
// @Param        estimated_cost  formData  string  true  "Estimated cost"
// @Param        reason          formData  string  true  "Reason"
// @Success      303
// @Router       /requests/new [post]
func (h *RequestHandler) Create(c echo.Context) error {
	actor := Actor(c)

	var form newRequestForm
	if err := c.Bind(&form); err != nil {
		SetFlash(c, "danger", "All fields are required.")
		return c.Redirect(http.StatusSeeOther, "/requests/new")
	}
	form.Destination = strings.TrimSpace(form.Destination)
	form.StartDate = strings.TrimSpace(form.StartDate)
	form.EndDate = strings.TrimSpace(form.EndDate)
	form.EstimatedCost = strings.TrimSpace(form.EstimatedCost)
	form.Reason = strings.TrimSpace(form.Reason)

	if err := c.Validate(&form); err != nil {
		SetFlash(c, "danger", "All fields are required.")
		return c.Redirect(http.StatusSeeOther, "/requests/new")
	}

	startDate, err := time.Parse(dateLayout, form.StartDate)
	if err != nil {
		SetFlash(c, "danger", "Invalid date format.")
		return c.Redirect(http.StatusSeeOther, "/requests/new")
	}
	endDate, err := time.Parse(dateLayout, form.EndDate)
	if err != nil {
		SetFlash(c, "danger", "Invalid date format.")
		return c.Redirect(http.StatusSeeOther, "/requests/new")
	}

	cost, err := strconv.ParseFloat(form.EstimatedCost, 64)
	if err != nil {
		SetFlash(c, "danger", "Estimated cost must be a number.")
		return c.Redirect(http.StatusSeeOther, "/requests/new")
	}

	if _, err := h.service.Create(c.Request().Context(), ports.CreateRequestInput{
		RequesterID:   actor.ID,
		Destination:   form.Destination,
		StartDate:     startDate,
		EndDate:       endDate,
		EstimatedCost: cost,
		Reason:        form.Reason,
	}); err != nil {
		return err
	}

	SetFlash(c, "success", "Travel request submitted.")
	return c.Redirect(http.StatusSeeOther, "/requests/my")
}

// ListMine handles GET /requests/my: the actor's own requests, optionally
// filtered to one status, newest submission first.
//
// @Summary      List own travel requests
// @Tags         requests
// @Produce      json
// @Param        status  query     string  false  "Status filter"  Enums(All, Pending, Approved, Denied, Settled)
// @Success      200     {object}  requestListView
// @Router       /requests/my [get]
func (h *RequestHandler) ListMine(c echo.Context) error {
	actor := Actor(c)

	statusFilter := c.QueryParam("status")
	if statusFilter == "" {
		statusFilter = ports.StatusFilterAll
	}

	requests, err := h.service.ListMine(c.Request().Context(), actor.ID, statusFilter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, requestListView{
		User:         actor,
		StatusFilter: statusFilter,
		Requests:     toRequestViews(requests),
		Flash:        TakeFlash(c),
	})
}

// ListAll handles GET /requests/manage: every request across all
// requesters. The manager guard runs before this handler.
//
// @Summary      List all travel requests (manager)
// @Tags         requests
// @Produce      json
// @Success      200  {object}  requestListView
// @Router       /requests/manage [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	requests, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, requestListView{
		User:     Actor(c),
		Requests: toRequestViews(requests),
		Flash:    TakeFlash(c),
	})
}

// Detail handles GET /requests/:id. Employees may only view their own
// requests; a foreign id bounces to the dashboard with a notice.
//
// @Summary      Travel request detail
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  requestDetailView
// @Failure      404  {object}  map[string]string
// @Router       /requests/{id} [get]
func (h *RequestHandler) Detail(c echo.Context) error {
	actor := Actor(c)

	req, err := h.service.Get(c.Request().Context(), viewerFor(actor), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			SetFlash(c, "danger", "You are not allowed to view this request.")
			return c.Redirect(http.StatusFound, "/dashboard")
		}
		return err
	}

	return c.JSON(http.StatusOK, requestDetailView{
		User:    actor,
		Request: toRequestView(req),
		Flash:   TakeFlash(c),
	})
}

// Decide handles POST /requests/:id. Only a manager mutates the record; a
// non-manager submission passes the ownership check and re-renders the
// detail view untouched.
//
// @Summary      Decide a travel request (manager)
// @Tags         requests
// @Accept       x-www-form-urlencoded
// @Param        id       path      string  true   "Request id"
// @Param        action   formData  string  false  "Decision action"  Enums(approve, deny, settle)
// @Param        comment  formData  string  false  "Manager comment"
// @Success      303
// @Failure      404  {object}  map[string]string
// @Router       /requests/{id} [post]
func (h *RequestHandler) Decide(c echo.Context) error {
	actor := Actor(c)
	id := c.Param("id")

	req, err := h.service.Get(c.Request().Context(), viewerFor(actor), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			SetFlash(c, "danger", "You are not allowed to view this request.")
			return c.Redirect(http.StatusFound, "/dashboard")
		}
		return err
	}

	if !actor.IsManager() {
		return c.JSON(http.StatusOK, requestDetailView{
			User:    actor,
			Request: toRequestView(req),
			Flash:   TakeFlash(c),
		})
	}

	var form decisionForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.service.Decide(c.Request().Context(), ports.DecisionInput{
		RequestID: id,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    form.Action,
		Comment:   form.Comment,
	}); err != nil {
		return err
	}

	SetFlash(c, "success", "Request updated.")
	return c.Redirect(http.StatusSeeOther, "/requests/manage")
}

func viewerFor(actor *domain.User) ports.Viewer {
	return ports.Viewer{UserID: actor.ID, Role: actor.Role}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corpops/travel-desk/internal/api/handler"
)

// RequireManager enforces the manager role gate. Anyone else is bounced to
// the dashboard with a notice and the guarded operation never runs.
func RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if actor := handler.Actor(c); !actor.IsManager() {
				handler.SetFlash(c, "danger", "Manager access required.")
				return c.Redirect(http.StatusFound, "/dashboard")
			}
			return next(c)
		}
	}
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/corpops/travel-desk/internal/core/domain"
)

// Actor extracts the authenticated user injected by the LoadActor
// middleware. Nil when the request carries no resolvable session.
func Actor(c echo.Context) *domain.User {
	actor, _ := c.Get("actor").(*domain.User)
	return actor
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corpops/travel-desk/internal/api/handler"
	"github.com/corpops/travel-desk/internal/core/ports"
)

// LoadActor resolves the session cookie into the acting user and injects it
// into the request context. Resolution failures are not fatal here; public
// routes still work without an actor, and RequireAuthenticated gates the
// rest. A session whose user no longer exists resolves to no actor.
func LoadActor(sessions ports.SessionStore, users ports.CredentialRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(handler.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			userID, err := sessions.UserID(ctx, cookie.Value)
			if err != nil {
				return next(c)
			}

			user, err := users.FindByID(ctx, userID)
			if err != nil {
				return next(c)
			}

			c.Set("actor", user)
			return next(c)
		}
	}
}

// RequireAuthenticated rejects requests with no resolved actor. The guarded
// operation never runs; the caller is sent to the login entry point.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if handler.Actor(c) == nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

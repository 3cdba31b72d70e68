package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corpops/travel-desk/internal/core/domain"
	"github.com/corpops/travel-desk/internal/core/ports"
)

// AuthHandler owns the login/logout endpoints and the session cookie
// lifecycle: the session is created on successful login and destroyed on
// logout, nowhere else.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type loginView struct {
	Flash *Flash `json:"flash,omitempty"`
}

type dashboardView struct {
	User  *domain.User `json:"user"`
	Flash *Flash       `json:"flash,omitempty"`
}

// Home handles GET /. It sends the client to the dashboard when a session
// resolves, otherwise to the login entry point.
func (h *AuthHandler) Home(c echo.Context) error {
	if Actor(c) != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm handles GET /login.
//
// @Summary      Login entry point
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginView
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	if Actor(c) != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.JSON(http.StatusOK, loginView{Flash: TakeFlash(c)})
}

// Login handles POST /login: verifies credentials and establishes a session.
// Any failure surfaces as one generic notice; the caller cannot tell an
// unknown email from a wrong password.
//
// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	if Actor(c) != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.auth.Login(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			SetFlash(c, "danger", "Invalid email or password.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	SetFlash(c, "success", "Login successful.")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles GET /logout: destroys the session unconditionally.
// Logging out without an active session is not an error.
//
// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	SetFlash(c, "info", "Logged out.")
	return c.Redirect(http.StatusFound, "/login")
}

// Dashboard handles GET /dashboard.
//
// @Summary      Dashboard view
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dashboardView
// @Router       /dashboard [get]
func (h *AuthHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, dashboardView{
		User:  Actor(c),
		Flash: TakeFlash(c),
	})
}

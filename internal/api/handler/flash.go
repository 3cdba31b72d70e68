package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SessionCookieName carries the opaque session token.
const SessionCookieName = "td_session"

const flashCookieName = "td_flash"

// Flash is a one-shot notice that survives exactly one redirect. The
// rendering layer displays it once; reading it clears the cookie.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SetFlash queues a notice for the next request.
func SetFlash(c echo.Context, level, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(level + "|" + message)),
		Path:     "/",
		HttpOnly: true,
	})
}

// TakeFlash returns the pending notice, if any, and clears it.
func TakeFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Level: level, Message: message}
}

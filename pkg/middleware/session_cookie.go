package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const DefaultSessionCookie = "session"

type CookieOptions struct {
	Name   string
	Secure bool
}

func SetSessionCookie(c echo.Context, opts CookieOptions, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName(opts),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	})
}

func ClearSessionCookie(c echo.Context, opts CookieOptions) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName(opts),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

func cookieName(opts CookieOptions) string {
	if opts.Name == "" {
		return DefaultSessionCookie
	}
	return opts.Name
}

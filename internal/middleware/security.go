package middleware

import (
	"github.com/labstack/echo/v4"
)

type header struct {
	name  string
	value string
}

// responseHeaders are set before the handler runs, so error responses carry
// them too. Balances and movements must never be cached by a browser or proxy.
var responseHeaders = []header{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Referrer-Policy", "no-referrer"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
	{"Cache-Control", "no-store"},
	{"Pragma", "no-cache"},
}

// SecurityHeaders adds the API response headers
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for _, rh := range responseHeaders {
				h.Set(rh.name, rh.value)
			}
			return next(c)
		}
	}
}

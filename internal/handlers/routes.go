package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Health  *HealthCheckHandler
	Session *SessionHandler
	Account *AccountHandler
}

// RegisterRoutes mounts the API. loginLimiter guards POST /session only.
func RegisterRoutes(e *echo.Echo, h Handlers, loginLimiter echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)

	v1 := e.Group("/api/v1")

	loginMiddleware := []echo.MiddlewareFunc{}
	if loginLimiter != nil {
		loginMiddleware = append(loginMiddleware, loginLimiter)
	}
	v1.POST("/session", h.Session.Login, loginMiddleware...)
	v1.DELETE("/session", h.Session.Logout)
	v1.GET("/session", h.Session.Status)

	v1.GET("/account", h.Account.GetOverview)
	v1.POST("/account/close", h.Account.CloseAccount)
	v1.POST("/transfers", h.Account.Transfer)
	v1.POST("/loans", h.Account.RequestLoan)
}

package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHandler handles login, logout and the session timer
type SessionHandler struct {
	sessions services.SessionServiceInterface
	now      func() time.Time
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions services.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{sessions: sessions, now: time.Now}
}

// Login starts a session, replacing any active one
// @Summary Log in
// @Description Authenticate with short id and PIN. Unknown ids and wrong PINs get the same response.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.OverviewResponse "Account overview"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid short id or PIN"
// @Failure 429 {object} errors.ErrorResponse "SYSTEM_006 - Too many login attempts"
// @Router /api/v1/session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	overview, err := h.sessions.Login(c.Request().Context(), req.ShortID, req.PIN)
	if err != nil {
		if stderrors.Is(err, services.ErrAuthFailure) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewOverviewResponse(overview, h.now()))
}

// Logout ends the active session. Logging out without a session is a no-op.
// @Summary Log out
// @Tags Session
// @Success 204 "Session ended"
// @Router /api/v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Status reports whether a session is active and its countdown
// @Summary Session status
// @Tags Session
// @Produce json
// @Success 200 {object} dto.SessionStatusResponse "Session status"
// @Router /api/v1/session [get]
func (h *SessionHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.SessionStatusResponse{
		Active: h.sessions.Active(),
		Timer:  dto.NewTimerResponse(h.sessions.Timer()),
	})
}

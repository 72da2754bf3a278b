package dto

import "bankist/internal/services"

// Session Request DTOs

// LoginRequest represents the login form. Values stay strings so malformed
// input is coerced by the session service instead of failing JSON binding.
type LoginRequest struct {
	ShortID string `json:"short_id" validate:"required,max=32"`
	PIN     string `json:"pin" validate:"required,max=32"`
}

// Session Response DTOs

// TimerResponse reports the logout countdown
type TimerResponse struct {
	State     string `json:"state"`
	Remaining int    `json:"remaining"`
	Label     string `json:"label"`
}

// SessionStatusResponse is returned by GET /session
type SessionStatusResponse struct {
	Active bool          `json:"active"`
	Timer  TimerResponse `json:"timer"`
}

// NewTimerResponse converts a timer snapshot
func NewTimerResponse(t services.TimerSnapshot) TimerResponse {
	return TimerResponse{
		State:     t.State.String(),
		Remaining: t.Remaining,
		Label:     t.Label,
	}
}

package handlers

import (
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/middleware"
	"bankist/internal/models"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers report failures through these helpers only:
//
// 1. SendError for client errors (4xx), e.g. SendError(c, errors.AuthNoActiveSession)
// 2. SendSystemError for internal failures. The error text never reaches the client.
//
// A rejected ledger operation is not an error. It is a 200 OperationResponse
// with status "rejected", except a reject for a missing session, which is
// answered with AUTH_002 (see sendOperation).

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, middleware.GetTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides err behind a SYSTEM_001 response
func SendSystemError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, errors.NewSystemError(middleware.GetTraceID(c)))
}

// sendOperation answers a ledger operation. A reject is a 200 unless it
// escalates to an error code, which only a missing session does.
func sendOperation(c echo.Context, result models.OperationResult, resp *dto.OperationResponse) error {
	if code, ok := errors.ForRejection(result); ok {
		return SendError(c, code)
	}
	return c.JSON(http.StatusOK, resp)
}

package errors

import (
	"fmt"
	"net/http"
	"slices"

	"bankist/internal/models"
)

// ErrorResponse is the body of every failed request. A rejected ledger
// operation is not a failure: it answers 200 with its operation status.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, a client-safe message and the trace id
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts the detail of a response being built
type ErrorOption func(*ErrorDetail)

func WithDetails(details ...string) ErrorOption {
	return func(d *ErrorDetail) {
		d.Details = append(d.Details, details...)
	}
}

func WithMessage(message string) ErrorOption {
	return func(d *ErrorDetail) {
		d.Message = message
	}
}

var statusByCode = map[ErrorCode]int{
	AuthInvalidCredentials:   http.StatusUnauthorized,
	AuthNoActiveSession:      http.StatusUnauthorized,
	ValidationGeneral:        http.StatusBadRequest,
	ValidationRequiredField:  http.StatusBadRequest,
	ValidationInvalidFormat:  http.StatusBadRequest,
	ValidationInvalidSort:    http.StatusBadRequest,
	ResourceNotFound:         http.StatusNotFound,
	ResourceMethodNotAllowed: http.StatusMethodNotAllowed,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// NewErrorResponse builds the response for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	detail := ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}
	for _, opt := range opts {
		opt(&detail)
	}
	return &ErrorResponse{Error: detail}
}

// NewValidationError lists one "field: message" detail per field, ordered by field name
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewSystemError answers an internal failure. The cause stays in the server log.
func NewSystemError(traceID string) *ErrorResponse {
	return NewErrorResponse(SystemInternalError, traceID)
}

// ForRejection reports the error code a rejected operation is answered with.
// Only a missing session is an error; any other reject is a normal outcome
// and ok is false.
func ForRejection(result models.OperationResult) (ErrorCode, bool) {
	if result.Rejected() && result.Reason == models.RejectNoSession {
		return AuthNoActiveSession, true
	}
	return "", false
}

// GetHTTPStatus returns the HTTP status for code, 500 when it is not mapped
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}

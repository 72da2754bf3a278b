package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"bankist/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite covers the envelope every failed request is answered with
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = uuid.NewString()
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNoSessionEnvelope() {
	response := NewErrorResponse(AuthNoActiveSession, s.traceID)

	raw, err := json.Marshal(response)
	s.Require().NoError(err)

	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Equal("AUTH_002", body["error"]["code"])
	s.Equal("No active session. Please log in", body["error"]["message"])
	s.Equal(s.traceID, body["error"]["trace_id"])
	s.NotContains(body["error"], "details")
	s.Equal(http.StatusUnauthorized, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestOptionsApplyInOrder() {
	response := NewErrorResponse(SystemServiceUnavailable, s.traceID,
		WithDetails("Ledger holds no accounts"),
		WithMessage("Ledger unavailable"),
		WithDetails("retry later"),
	)

	s.Equal("Ledger unavailable", response.Error.Message)
	s.Equal([]string{"Ledger holds no accounts", "retry later"}, response.Error.Details)
	s.Equal("[SYSTEM_003] Ledger unavailable (trace: "+s.traceID+")", response.String())
}

func (s *ResponseTestSuite) TestNewValidationError_DetailsSortedByField() {
	response := NewValidationError(map[string]string{
		"to":     "is required",
		"amount": "must be at most 32 characters long",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{
		"amount: must be at most 32 characters long",
		"to: is required",
	}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewSystemError_HidesCause() {
	response := NewSystemError(s.traceID)

	s.Equal(string(SystemInternalError), response.Error.Code)
	s.Empty(response.Error.Details)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestForRejection() {
	testCases := []struct {
		name   string
		result models.OperationResult
		want   ErrorCode
		isErr  bool
	}{
		{"missing session", models.Rejected(models.RejectNoSession), AuthNoActiveSession, true},
		{"insufficient funds", models.Rejected(models.RejectInsufficientFunds), "", false},
		{"invalid amount", models.Rejected(models.RejectInvalidAmount), "", false},
		{"loan not eligible", models.Rejected(models.RejectLoanNotEligible), "", false},
		{"confirmation mismatch", models.Rejected(models.RejectConfirmationMismatch), "", false},
		{"applied", models.Applied(), "", false},
		{"scheduled", models.Scheduled(uuid.New()), "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code, isErr := ForRejection(tc.result)
			s.Equal(tc.isErr, isErr)
			s.Equal(tc.want, code)
		})
	}
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{AuthInvalidCredentials, http.StatusUnauthorized},
		{AuthNoActiveSession, http.StatusUnauthorized},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{ValidationInvalidSort, http.StatusBadRequest},
		{ResourceNotFound, http.StatusNotFound},
		{ResourceMethodNotAllowed, http.StatusMethodNotAllowed},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemUnexpectedError, http.StatusInternalServerError},
		{ErrorCode("LEDGER_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestEveryCatalogueCodeHasAStatus() {
	for code := range errorMessages {
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, string(code))
		s.Less(status, 600, string(code))
	}
}

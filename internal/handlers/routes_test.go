package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bankist/internal/app"
	"bankist/internal/config"
	"bankist/internal/dto"
	"bankist/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// RoutesSuite drives the full API over the real ledger core
type RoutesSuite struct {
	suite.Suite
	app  *app.App
	echo *echo.Echo
}

func (s *RoutesSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.Load()
	cfg.Security.PINHashCost = bcrypt.MinCost
	cfg.Seed.GeneratedAccounts = 0
	cfg.Session.TickInterval = time.Hour
	cfg.Session.LoanApprovalDelay = time.Millisecond

	a, err := app.New(cfg, logger)
	s.Require().NoError(err)
	s.app = a

	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(a.Registry, logger).Handle
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())

	RegisterRoutes(e, Handlers{
		Health:  NewHealthCheckHandler(a.Accounts),
		Session: NewSessionHandler(a.Sessions),
		Account: NewAccountHandler(a.Sessions),
	}, middleware.NewRateLimiter(0.001, 3).Middleware())
	s.echo = e
}

func (s *RoutesSuite) TearDownTest() {
	s.app.Close()
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesSuite))
}

func (s *RoutesSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "10.1.1.1:5555"
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RoutesSuite) TestTransferFlow() {
	rec := s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "1111"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = s.do(http.MethodPost, "/api/v1/transfers", dto.TransferRequest{To: "jd", Amount: "100"})
	s.Require().Equal(http.StatusOK, rec.Code)

	var op dto.OperationResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &op))
	s.Equal("applied", op.Status)
	s.Require().NotNil(op.Overview)
	s.Equal("25852.59", op.Overview.Balance.Amount.String())

	jessica, err := s.app.Accounts.GetByShortID("jd")
	s.Require().NoError(err)
	s.Equal("11820", jessica.Balance().String())
}

func (s *RoutesSuite) TestSilentRejectLeavesLedgerUnchanged() {
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "jd", PIN: "2222"}).Code)

	rec := s.do(http.MethodPost, "/api/v1/transfers", dto.TransferRequest{To: "js", Amount: "999999"})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"rejected"`)

	jessica, err := s.app.Accounts.GetByShortID("jd")
	s.Require().NoError(err)
	s.Equal("11720", jessica.Balance().String())
}

func (s *RoutesSuite) TestAuthFailureIdenticalForUnknownAndWrongPIN() {
	unknown := s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "zz", PIN: "1111"})
	wrong := s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "1234"})

	s.Equal(http.StatusUnauthorized, unknown.Code)
	s.Equal(http.StatusUnauthorized, wrong.Code)

	var a, b ErrorResponse
	s.Require().NoError(json.Unmarshal(unknown.Body.Bytes(), &a))
	s.Require().NoError(json.Unmarshal(wrong.Body.Bytes(), &b))
	s.Equal("AUTH_001", a.Error.Code)
	s.Equal(a.Error.Code, b.Error.Code)
	s.Equal(a.Error.Message, b.Error.Message)
}

func (s *RoutesSuite) TestLoginIsRateLimited() {
	for i := 0; i < 3; i++ {
		s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "0000"})
	}

	rec := s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "1111"})
	s.Equal(http.StatusTooManyRequests, rec.Code)

	// only POST /session is throttled, other writes from the same client pass
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/session", nil).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/session", nil).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/transfers", dto.TransferRequest{To: "jd", Amount: "1"}).Code)
}

func (s *RoutesSuite) TestOperationsAfterLogoutAreUnauthorized() {
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "1111"}).Code)
	s.Require().Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/session", nil).Code)

	rec := s.do(http.MethodPost, "/api/v1/loans", dto.LoanRequest{Amount: "1000"})
	s.Equal(http.StatusUnauthorized, rec.Code)

	var body ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("AUTH_002", body.Error.Code)
	s.Equal(rec.Header().Get(middleware.TraceIDHeader), body.Error.TraceID)
	s.Equal(0, s.app.Loans.Pending())
}

func (s *RoutesSuite) TestLogoutThenOverviewRequiresSession() {
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "1111"}).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/session", nil).Code)

	rec := s.do(http.MethodGet, "/api/v1/account", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *RoutesSuite) TestCloseAccountEndsSession() {
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "jd", PIN: "2222"}).Code)

	rec := s.do(http.MethodPost, "/api/v1/account/close", dto.CloseAccountRequest{ShortID: "jd", PIN: "2222"})
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"applied"`)

	s.False(s.app.Accounts.Exists("jd"))
	s.False(s.app.Sessions.Active())
}

func (s *RoutesSuite) TestUnknownRouteUsesErrorCatalogue() {
	rec := s.do(http.MethodGet, "/api/v1/nowhere", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "RESOURCE_001")
}

func (s *RoutesSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"accounts":2`)
}

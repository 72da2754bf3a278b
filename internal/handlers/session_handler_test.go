package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bankist/internal/dto"
	"bankist/internal/middleware"
	"bankist/internal/models"
	"bankist/internal/services"
	"bankist/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var handlerNow = time.Date(2020, 7, 13, 9, 0, 0, 0, time.UTC)

func testOverview() *services.Overview {
	return &services.Overview{
		OwnerName:    "Jonas Schmedtmann",
		FirstName:    "Jonas",
		ShortID:      "js",
		Currency:     "EUR",
		Locale:       "pt-PT",
		InterestRate: decimal.RequireFromString("1.2"),
		Balance:      decimal.RequireFromString("1500"),
		Movements: []models.Movement{
			{Index: 0, Amount: decimal.RequireFromString("1500"), Date: handlerNow.Add(-time.Hour)},
		},
		Timer: services.TimerSnapshot{State: models.TimerActive, Remaining: 120, Label: "02:00"},
	}
}

// SessionHandlerSuite defines the test suite for SessionHandler
type SessionHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sessions *service_mocks.MockSessionServiceInterface
	handler  *SessionHandler
	echo     *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *SessionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessions = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.handler = NewSessionHandler(s.sessions)
	s.handler.now = func() time.Time { return handlerNow }

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.echo.HTTPErrorHandler = middleware.NewErrorHandler(prometheus.NewRegistry(), nil).Handle
	s.echo.POST("/api/v1/session", s.handler.Login)
	s.echo.DELETE("/api/v1/session", s.handler.Logout)
	s.echo.GET("/api/v1/session", s.handler.Status)
}

// TearDownTest runs after each test in the suite
func (s *SessionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSessionHandlerSuite runs the test suite
func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerSuite))
}

func (s *SessionHandlerSuite) serve(method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		var raw []byte
		if str, ok := body.(string); ok {
			raw = []byte(str)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *SessionHandlerSuite) TestLogin_Success() {
	s.sessions.EXPECT().
		Login(gomock.Any(), "js", "1111").
		Return(testOverview(), nil)

	rec := s.serve(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "1111"})

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.OverviewResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Welcome back, Jonas", resp.Welcome)
	s.Equal("js", resp.ShortID)
	s.Equal("13/07/2020", resp.Date)
	s.Require().Len(resp.Movements, 1)
	s.Equal(services.LabelToday, resp.Movements[0].DateLabel)
	s.Equal("active", resp.Timer.State)
}

func (s *SessionHandlerSuite) TestLogin_AuthFailureBodiesMatch() {
	s.sessions.EXPECT().Login(gomock.Any(), "zz", "1111").Return(nil, services.ErrAuthFailure)
	s.sessions.EXPECT().Login(gomock.Any(), "js", "9999").Return(nil, services.ErrAuthFailure)

	unknown := s.serve(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "zz", PIN: "1111"})
	wrongPIN := s.serve(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "9999"})

	s.Equal(http.StatusUnauthorized, unknown.Code)
	s.Equal(http.StatusUnauthorized, wrongPIN.Code)
	s.Contains(unknown.Body.String(), "AUTH_001")

	var a, b ErrorResponse
	s.Require().NoError(json.Unmarshal(unknown.Body.Bytes(), &a))
	s.Require().NoError(json.Unmarshal(wrongPIN.Body.Bytes(), &b))
	s.Equal(a.Error.Code, b.Error.Code)
	s.Equal(a.Error.Message, b.Error.Message)
}

func (s *SessionHandlerSuite) TestLogin_MissingFields() {
	rec := s.serve(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
	s.Contains(rec.Body.String(), "pin: is required")
}

func (s *SessionHandlerSuite) TestLogin_MalformedBody() {
	rec := s.serve(http.MethodPost, "/api/v1/session", `{"short_id":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *SessionHandlerSuite) TestLogin_UnexpectedError() {
	s.sessions.EXPECT().Login(gomock.Any(), "js", "1111").Return(nil, errors.New("boom"))

	rec := s.serve(http.MethodPost, "/api/v1/session", dto.LoginRequest{ShortID: "js", PIN: "1111"})

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.False(strings.Contains(rec.Body.String(), "boom"))
}

func (s *SessionHandlerSuite) TestLogout() {
	s.sessions.EXPECT().Logout(gomock.Any())

	rec := s.serve(http.MethodDelete, "/api/v1/session", nil)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *SessionHandlerSuite) TestLogout_PassesRequestContext() {
	s.sessions.EXPECT().Logout(gomock.Any()).Do(func(ctx context.Context) {
		s.NotNil(ctx)
	})

	s.serve(http.MethodDelete, "/api/v1/session", nil)
}

func (s *SessionHandlerSuite) TestStatus() {
	s.sessions.EXPECT().Active().Return(true)
	s.sessions.EXPECT().Timer().Return(services.TimerSnapshot{State: models.TimerActive, Remaining: 75, Label: "01:15"})

	rec := s.serve(http.MethodGet, "/api/v1/session", nil)

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SessionStatusResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Active)
	s.Equal(dto.TimerResponse{State: "active", Remaining: 75, Label: "01:15"}, resp.Timer)
}

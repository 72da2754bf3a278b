package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bankist/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite runs handlers behind the same chain the server uses
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
	log  *bytes.Buffer
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.log = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.log, nil))

	s.echo = echo.New()
	s.echo.Use(RequestID())
	s.echo.Use(PanicRecovery(logger))
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	return rec
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesSystemError() {
	s.echo.POST("/api/v1/transfers", func(c echo.Context) error {
		panic("ledger invariant broken for js, pin 1111")
	})

	rec := s.serve("/api/v1/transfers")

	s.Equal(http.StatusInternalServerError, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.Equal(rec.Header().Get(TraceIDHeader), body.Error.TraceID)
	s.NotContains(rec.Body.String(), "1111")
	s.NotContains(rec.Body.String(), "invariant")
}

func (s *PanicRecoveryTestSuite) TestPanicIsLoggedWithTraceID() {
	s.echo.POST("/api/v1/loans", func(c echo.Context) error {
		panic(errors.NewSystemError("inner"))
	})

	rec := s.serve("/api/v1/loans")

	var entry map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.log.Bytes(), &entry))
	s.Equal("Panic recovered", entry["msg"])
	s.Equal(rec.Header().Get(TraceIDHeader), entry["trace_id"])
	s.Equal("/api/v1/loans", entry["path"])
	s.Contains(entry["panic"], "SYSTEM_001")
	s.NotEmpty(entry["stack_trace"])
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsLeftAlone() {
	s.echo.POST("/api/v1/account/close", func(c echo.Context) error {
		if err := c.JSON(http.StatusOK, map[string]string{"status": "applied"}); err != nil {
			return err
		}
		panic("observer failed after close")
	})

	rec := s.serve("/api/v1/account/close")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"applied"}`, rec.Body.String())
	s.Contains(s.log.String(), "observer failed after close")
}

func (s *PanicRecoveryTestSuite) TestHandlerErrorPassesThrough() {
	s.echo.POST("/api/v1/session", func(c echo.Context) error {
		return echo.ErrUnauthorized
	})

	rec := s.serve("/api/v1/session")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Empty(s.log.String())
}

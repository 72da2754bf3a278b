package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bankist/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter int

func (c fixedCounter) Count() int { return int(c) }

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	h := NewHealthCheckHandler(fixedCounter(2))
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	rec := httptest.NewRecorder()
	require.NoError(t, h.HealthCheck(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","time":"2026-01-02T03:04:05Z","accounts":2}`, rec.Body.String())
}

func TestHealthCheck_EmptyLedger(t *testing.T) {
	e := echo.New()
	h := NewHealthCheckHandler(repositories.NewAccountRepository())

	rec := httptest.NewRecorder()
	require.NoError(t, h.HealthCheck(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_003")
}

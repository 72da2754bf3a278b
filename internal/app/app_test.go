package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bankist/internal/config"
	"bankist/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Security.PINHashCost = bcrypt.MinCost
	cfg.Seed.GeneratedAccounts = 1
	cfg.Seed.FakerSeed = 5
	cfg.Session.TickInterval = time.Hour
	cfg.Session.LoanApprovalDelay = time.Millisecond
	return cfg
}

func TestNew(t *testing.T) {
	a, err := New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 3, a.Accounts.Count())
	assert.Len(t, a.Credentials, 3)

	count, err := testutil.GatherAndCount(a.Registry, "bankist_accounts")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	overview, err := a.Sessions.Login(context.Background(), "jd", "2222")
	require.NoError(t, err)
	assert.Equal(t, "Jessica", overview.FirstName)

	result := a.Sessions.Transfer(context.Background(), "js", "100")
	assert.Equal(t, models.OperationApplied, result.Status)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Session.TimeoutTicks = 0

	_, err := New(cfg, nil)
	assert.Error(t, err)
}

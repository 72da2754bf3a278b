package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testMovementTime = time.Date(2020, 7, 12, 10, 51, 36, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAccount(t *testing.T, owner string, pin int, movements ...string) *models.Account {
	t.Helper()

	params := models.NewAccountParams{
		OwnerName:    owner,
		PIN:          pin,
		InterestRate: decimal.RequireFromString("1.2"),
		Currency:     "EUR",
		Locale:       "pt-PT",
	}
	for i, m := range movements {
		params.Movements = append(params.Movements, decimal.RequireFromString(m))
		params.MovementDates = append(params.MovementDates, testMovementTime.Add(time.Duration(i)*time.Hour))
	}

	account, err := models.NewAccount(params, bcrypt.MinCost)
	require.NoError(t, err)
	return account
}

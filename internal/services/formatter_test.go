package services

import (
	"testing"
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	usd := FormatCurrency(decimal.RequireFromString("348.73"), "en-US", "USD")
	assert.Contains(t, usd, "$")
	assert.Contains(t, usd, "348.73")

	eur := FormatCurrency(decimal.RequireFromString("348.734"), "pt-PT", "EUR")
	assert.Contains(t, eur, "€")
	assert.Contains(t, eur, "348")
	assert.Contains(t, eur, "73")
	assert.NotContains(t, eur, "734")

	unknown := FormatCurrency(decimal.RequireFromString("10"), "en-US", "EURO")
	assert.Equal(t, "10.00 EURO", unknown)
}

func TestFormatCurrency_FifteenSignificantDigitsAreExact(t *testing.T) {
	usd := FormatCurrency(decimal.RequireFromString("1234567890123.45"), "en-US", "USD")
	assert.Contains(t, usd, "1,234,567,890,123.45")

	negative := FormatCurrency(decimal.RequireFromString("-9999999999999.99"), "en-US", "USD")
	assert.Contains(t, negative, "9,999,999,999,999.99")
}

func TestMovementDateLabel(t *testing.T) {
	now := time.Date(2020, 7, 26, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name   string
		date   time.Time
		locale string
		want   string
	}{
		{name: "same moment", date: now, locale: "en-US", want: "Today"},
		{name: "a few hours ago", date: now.Add(-5 * time.Hour), locale: "en-US", want: "Today"},
		{name: "one day", date: now.Add(-day), locale: "en-US", want: "Yesterday"},
		{name: "day and a half rounds up", date: now.Add(-36 * time.Hour), locale: "en-US", want: "2 days ago"},
		{name: "three days", date: now.Add(-3 * day), locale: "pt-PT", want: "3 days ago"},
		{name: "seven days", date: now.Add(-7 * day), locale: "en-US", want: "7 days ago"},
		{name: "eight days us", date: now.Add(-8 * day), locale: "en-US", want: "7/18/2020"},
		{name: "eight days portugal", date: now.Add(-8 * day), locale: "pt-PT", want: "18/07/2020"},
		{name: "future date", date: now.Add(day), locale: "en-US", want: "Yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MovementDateLabel(tt.date, now, tt.locale))
		})
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2019, 11, 18, 21, 31, 17, 0, time.UTC)

	assert.Equal(t, "11/18/2019", FormatDate(date, "en-US"))
	assert.Equal(t, "18/11/2019", FormatDate(date, "en-GB"))
	assert.Equal(t, "18/11/2019", FormatDate(date, "pt-PT"))
	assert.Equal(t, "18.11.2019", FormatDate(date, "de-DE"))
	assert.Equal(t, "2019/11/18", FormatDate(date, "ja-JP"))
	assert.Equal(t, "11/18/2019", FormatDate(date, "not a locale"))
}

func TestMovementType(t *testing.T) {
	assert.Equal(t, models.MovementTypeDeposit, MovementType(decimal.NewFromInt(5)))
	assert.Equal(t, models.MovementTypeWithdrawal, MovementType(decimal.NewFromInt(-5)))
}

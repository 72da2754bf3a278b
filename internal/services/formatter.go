package services

import (
	"fmt"
	"math"
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"

	// Movements older than this many days show a calendar date
	RecentMovementDays = 7
)

// FormatCurrency renders amount with the currency symbol and the number
// conventions of locale. Unknown currencies fall back to the plain code.
// x/text only formats native numbers, so the rounded amount passes through
// float64: the output is exact up to 15 significant digits. Callers that need
// the exact value keep the decimal alongside the formatted string.
func FormatCurrency(amount decimal.Decimal, locale, currencyCode string) string {
	tag := parseLocale(locale)
	printer := message.NewPrinter(tag)
	value := amount.Round(2).InexactFloat64()

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return printer.Sprintf("%.2f %s", value, currencyCode)
	}
	return printer.Sprint(currency.NarrowSymbol(unit.Amount(value)))
}

// MovementDateLabel describes when a movement happened relative to now
func MovementDateLabel(date, now time.Time, locale string) string {
	days := int(math.Round(math.Abs(now.Sub(date).Hours()) / 24))

	switch {
	case days == 0:
		return LabelToday
	case days == 1:
		return LabelYesterday
	case days <= RecentMovementDays:
		return fmt.Sprintf("%d days ago", days)
	default:
		return FormatDate(date, locale)
	}
}

// FormatDate renders the calendar date in the numeric order used by locale
func FormatDate(date time.Time, locale string) string {
	tag := parseLocale(locale)
	base, _ := tag.Base()
	region, _ := tag.Region()

	switch base.String() {
	case "en":
		if region.String() == "US" || region.String() == "ZZ" {
			return date.Format("1/2/2006")
		}
		return date.Format("02/01/2006")
	case "de", "ru", "pl", "fi":
		return date.Format("02.01.2006")
	case "ja", "zh", "ko", "hu":
		return date.Format("2006/01/02")
	default:
		return date.Format("02/01/2006")
	}
}

// MovementType classifies a signed amount
func MovementType(amount decimal.Decimal) string {
	return models.Movement{Amount: amount}.Type()
}

func parseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

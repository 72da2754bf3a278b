package validation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmountExponent bounds the decimal exponent of a parsed amount in both
// directions. Comparing or multiplying a balance against a larger exponent
// expands it into a huge big.Int while the ledger lock is held.
const MaxAmountExponent = 18

// ParseAmount parses raw user input as a decimal amount. Blank or
// non-numeric input reports false, as does an exponent outside
// ±MaxAmountExponent. The sign is left for the caller to check.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := amount.Exponent(); exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return decimal.Zero, false
	}
	return amount, true
}

// ParsePIN parses raw user input as an integer PIN
func ParsePIN(raw string) (int, bool) {
	pin, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return pin, true
}

// NormalizeShortID trims and lowercases a typed short id
func NormalizeShortID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

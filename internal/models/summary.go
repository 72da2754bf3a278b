package models

import "github.com/shopspring/decimal"

// Summary aggregates an account's movements. TotalOut is an absolute value.
type Summary struct {
	TotalIn       decimal.Decimal `json:"total_in"`
	TotalOut      decimal.Decimal `json:"total_out"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

package models

import "github.com/shopspring/decimal"

// LoanDecision is the result of checking a loan request. Amount is the
// requested amount floored to whole units.
type LoanDecision struct {
	Amount   decimal.Decimal
	Eligible bool
	Reason   RejectReason
}

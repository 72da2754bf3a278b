package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MovementTypeDeposit    = "deposit"
	MovementTypeWithdrawal = "withdrawal"
)

// Movement is one signed amount paired with its timestamp. Index is the
// position in the account's recorded history.
type Movement struct {
	Index  int             `json:"index"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Type returns deposit for positive amounts and withdrawal otherwise
func (m Movement) Type() string {
	if m.Amount.IsPositive() {
		return MovementTypeDeposit
	}
	return MovementTypeWithdrawal
}

package dto

import (
	"time"

	"bankist/internal/models"
	"bankist/internal/services"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// TransferRequest moves money from the logged-in account to another owner
type TransferRequest struct {
	To     string `json:"to" validate:"max=32"`
	Amount string `json:"amount" validate:"max=32"`
}

// LoanRequest asks for a loan credited after the approval delay
type LoanRequest struct {
	Amount string `json:"amount" validate:"max=32"`
}

// CloseAccountRequest repeats the credentials of the logged-in account
type CloseAccountRequest struct {
	ShortID string `json:"short_id" validate:"max=32"`
	PIN     string `json:"pin" validate:"max=32"`
}

// Account Response DTOs

// MoneyResponse pairs an exact amount with its localized rendering
type MoneyResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

// MovementResponse is one row of the movement list
type MovementResponse struct {
	Index     int           `json:"index"`
	Type      string        `json:"type"`
	Amount    MoneyResponse `json:"amount"`
	Date      time.Time     `json:"date"`
	DateLabel string        `json:"date_label"`
}

// SummaryResponse holds the in, out and interest totals
type SummaryResponse struct {
	In       MoneyResponse `json:"in"`
	Out      MoneyResponse `json:"out"`
	Interest MoneyResponse `json:"interest"`
}

// OverviewResponse is everything the account screen shows
type OverviewResponse struct {
	Welcome      string             `json:"welcome"`
	Owner        string             `json:"owner"`
	ShortID      string             `json:"short_id"`
	Currency     string             `json:"currency"`
	Locale       string             `json:"locale"`
	InterestRate decimal.Decimal    `json:"interest_rate"`
	Date         string             `json:"date"`
	Balance      MoneyResponse      `json:"balance"`
	Summary      SummaryResponse    `json:"summary"`
	Movements    []MovementResponse `json:"movements"`
	Sort         string             `json:"sort"`
	Timer        TimerResponse      `json:"timer"`
}

// OperationResponse reports the outcome of a ledger mutation. Rejections are
// reported here with a 200, never as errors.
type OperationResponse struct {
	Status   string            `json:"status"`
	Reason   string            `json:"reason,omitempty"`
	TaskID   string            `json:"task_id,omitempty"`
	Overview *OverviewResponse `json:"overview,omitempty"`
}

// NewOverviewResponse renders an overview for the account's locale.
// now anchors the relative movement dates.
func NewOverviewResponse(ov *services.Overview, now time.Time) *OverviewResponse {
	money := func(amount decimal.Decimal) MoneyResponse {
		return MoneyResponse{
			Amount:    amount,
			Formatted: services.FormatCurrency(amount, ov.Locale, ov.Currency),
		}
	}

	movements := make([]MovementResponse, 0, len(ov.Movements))
	for _, m := range ov.Movements {
		movements = append(movements, MovementResponse{
			Index:     m.Index,
			Type:      m.Type(),
			Amount:    money(m.Amount),
			Date:      m.Date,
			DateLabel: services.MovementDateLabel(m.Date, now, ov.Locale),
		})
	}

	sort := string(ov.Sort)
	if ov.Sort == models.SortNone {
		sort = "none"
	}

	return &OverviewResponse{
		Welcome:      "Welcome back, " + ov.FirstName,
		Owner:        ov.OwnerName,
		ShortID:      ov.ShortID,
		Currency:     ov.Currency,
		Locale:       ov.Locale,
		InterestRate: ov.InterestRate,
		Date:         services.FormatDate(now, ov.Locale),
		Balance:      money(ov.Balance),
		Summary: SummaryResponse{
			In:       money(ov.Summary.TotalIn),
			Out:      money(ov.Summary.TotalOut),
			Interest: money(ov.Summary.TotalInterest),
		},
		Movements: movements,
		Sort:      sort,
		Timer:     NewTimerResponse(ov.Timer),
	}
}

// NewOperationResponse converts an operation result
func NewOperationResponse(result models.OperationResult) *OperationResponse {
	resp := &OperationResponse{
		Status: string(result.Status),
		Reason: string(result.Reason),
	}
	if result.TaskID != nil {
		resp.TaskID = result.TaskID.String()
	}
	return resp
}

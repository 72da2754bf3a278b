package models

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCurrency = "EUR"
	DefaultLocale   = "en-US"

	// Interest amounts below this threshold are dropped from the summary.
	MinInterestPerDeposit = 1

	// A loan needs one movement of at least this share of the loan amount.
	LoanCoverageRatio = "0.10"
)

var (
	ErrOwnerNameRequired   = errors.New("owner name is required")
	ErrShortIDMismatch     = errors.New("short id does not match owner name")
	ErrPINNotSet           = errors.New("pin is not set")
	ErrMovementsMismatch   = errors.New("movements and movement dates must have the same length")
	ErrInvalidCurrencyCode = errors.New("currency must be a 3-letter ISO code")

	loanCoverageRatio = decimal.RequireFromString(LoanCoverageRatio)
	hundred           = decimal.NewFromInt(100)
)

// Account is one customer of the demo bank. Movements are append-only and
// always paired with their timestamps.
type Account struct {
	OwnerName    string          `json:"owner_name"`
	ShortID      string          `json:"short_id"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`

	pinHash       []byte
	movements     []decimal.Decimal
	movementDates []time.Time
}

// NewAccountParams carries the fields needed to open an account
type NewAccountParams struct {
	OwnerName     string
	PIN           int
	InterestRate  decimal.Decimal
	Currency      string
	Locale        string
	Movements     []decimal.Decimal
	MovementDates []time.Time
}

// NewAccount builds an account, derives its short id and hashes the PIN with
// the given bcrypt cost.
func NewAccount(p NewAccountParams, pinCost int) (*Account, error) {
	a := &Account{
		OwnerName:    strings.TrimSpace(p.OwnerName),
		InterestRate: p.InterestRate,
		Currency:     strings.ToUpper(p.Currency),
		Locale:       p.Locale,
	}
	a.ShortID = ShortIDFor(a.OwnerName)

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}
	if a.Locale == "" {
		a.Locale = DefaultLocale
	}

	if len(p.Movements) != len(p.MovementDates) {
		return nil, ErrMovementsMismatch
	}
	a.movements = slices.Clone(p.Movements)
	a.movementDates = slices.Clone(p.MovementDates)

	if err := a.SetPIN(p.PIN, pinCost); err != nil {
		return nil, err
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// ShortIDFor returns the lowercase initials of every word in the owner name
func ShortIDFor(ownerName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(ownerName) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.OwnerName == "" {
		return ErrOwnerNameRequired
	}

	if a.ShortID == "" || a.ShortID != ShortIDFor(a.OwnerName) {
		return ErrShortIDMismatch
	}

	if len(a.pinHash) == 0 {
		return ErrPINNotSet
	}

	if len(a.movements) != len(a.movementDates) {
		return ErrMovementsMismatch
	}

	if len(a.Currency) != 3 {
		return ErrInvalidCurrencyCode
	}

	return nil
}

// SetPIN stores a bcrypt hash of the PIN's decimal form
func (a *Account) SetPIN(pin int, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(strconv.Itoa(pin)), cost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	a.pinHash = hash
	return nil
}

// VerifyPIN reports whether pin equals the stored PIN
func (a *Account) VerifyPIN(pin int) bool {
	if len(a.pinHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.pinHash, []byte(strconv.Itoa(pin))) == nil
}

// FirstName returns the first word of the owner name
func (a *Account) FirstName() string {
	first, _, _ := strings.Cut(a.OwnerName, " ")
	return first
}

// AppendMovement records a signed amount and its timestamp
func (a *Account) AppendMovement(amount decimal.Decimal, at time.Time) {
	a.movements = append(a.movements, amount)
	a.movementDates = append(a.movementDates, at)
}

// MovementCount returns the number of recorded movements
func (a *Account) MovementCount() int {
	return len(a.movements)
}

// Balance is the sum of all movements
func (a *Account) Balance() decimal.Decimal {
	return decimal.Sum(decimal.Zero, a.movements...)
}

// CanWithdraw checks if the amount is covered by the balance
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero) && a.Balance().GreaterThanOrEqual(amount)
}

// Summary computes incoming, outgoing and interest totals.
// Interest is earned per deposit and only kept when it reaches MinInterestPerDeposit.
func (a *Account) Summary() Summary {
	summary := Summary{
		TotalIn:       decimal.Zero,
		TotalOut:      decimal.Zero,
		TotalInterest: decimal.Zero,
	}

	minInterest := decimal.NewFromInt(MinInterestPerDeposit)
	for _, m := range a.movements {
		switch m.Sign() {
		case 1:
			summary.TotalIn = summary.TotalIn.Add(m)
			interest := m.Mul(a.InterestRate).Div(hundred)
			if interest.GreaterThanOrEqual(minInterest) {
				summary.TotalInterest = summary.TotalInterest.Add(interest)
			}
		case -1:
			summary.TotalOut = summary.TotalOut.Add(m.Abs())
		}
	}

	return summary
}

// QualifiesForLoan reports whether any movement covers LoanCoverageRatio of amount
func (a *Account) QualifiesForLoan(amount decimal.Decimal) bool {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	threshold := amount.Mul(loanCoverageRatio)
	return slices.ContainsFunc(a.movements, func(m decimal.Decimal) bool {
		return m.GreaterThanOrEqual(threshold)
	})
}

// Movements returns the paired movement history in recorded order
func (a *Account) Movements() []Movement {
	out := make([]Movement, len(a.movements))
	for i := range a.movements {
		out[i] = Movement{
			Index:  i,
			Amount: a.movements[i],
			Date:   a.movementDates[i],
		}
	}
	return out
}

// SortedMovements returns the paired history ordered by amount. Equal amounts
// keep their recorded order. The account itself is not modified.
func (a *Account) SortedMovements(ascending bool) []Movement {
	out := a.Movements()
	slices.SortStableFunc(out, func(x, y Movement) int {
		if ascending {
			return x.Amount.Cmp(y.Amount)
		}
		return y.Amount.Cmp(x.Amount)
	})
	return out
}

// Clone returns a deep copy safe to hand outside the repository
func (a *Account) Clone() *Account {
	cp := *a
	cp.pinHash = slices.Clone(a.pinHash)
	cp.movements = slices.Clone(a.movements)
	cp.movementDates = slices.Clone(a.movementDates)
	return &cp
}

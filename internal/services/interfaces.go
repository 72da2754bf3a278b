package services

import (
	"context"
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface defines the account ledger operations. It does not
// know about sessions; callers pass the account they act for.
type LedgerServiceInterface interface {
	Authenticate(shortID string, pin int) (*models.Account, error)
	Balance(account *models.Account) decimal.Decimal
	Summary(account *models.Account) models.Summary
	Transfer(ctx context.Context, sender *models.Account, recipientShortID string, amount decimal.Decimal) models.OperationResult
	CheckLoan(account *models.Account, amount decimal.Decimal) models.LoanDecision
	GrantLoan(ctx context.Context, shortID string, amount decimal.Decimal) models.OperationResult
	CloseAccount(ctx context.Context, account *models.Account, confirmShortID string, confirmPIN int) models.OperationResult
	SortedMovements(account *models.Account, ascending bool) []models.Movement
	Movements(account *models.Account) []models.Movement
	Account(shortID string) (*models.Account, error)
}

// SessionServiceInterface is the single-session facade used by presentation adapters.
// Raw user input is accepted as strings and coerced here.
type SessionServiceInterface interface {
	Login(ctx context.Context, shortID, pin string) (*Overview, error)
	Logout(ctx context.Context)
	Active() bool
	Transfer(ctx context.Context, recipientShortID, amount string) models.OperationResult
	RequestLoan(ctx context.Context, amount string) models.OperationResult
	CloseAccount(ctx context.Context, shortID, pin string) models.OperationResult
	Overview(order models.SortOrder) (*Overview, error)
	Timer() TimerSnapshot
	Subscribe(observer SessionObserver)
	Close()
}

// SessionObserver receives session lifecycle notifications. Callbacks run
// outside of any session lock and may call back into the service.
type SessionObserver interface {
	OnSessionStart(account *models.Account)
	OnSessionEnd()
	OnSessionExpired()
	OnLedgerChanged(account *models.Account)
}

// LoanTask is the deferred work of an approved loan
type LoanTask func(ctx context.Context, taskID uuid.UUID)

// LoanSchedulerInterface runs deferred, cancellable tasks
type LoanSchedulerInterface interface {
	Schedule(ctx context.Context, delay time.Duration, fn LoanTask) uuid.UUID
	Pending() int
	Wait()
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogSessionStarted(ctx context.Context, sessionID uuid.UUID, shortID string)
	LogSessionEnded(ctx context.Context, sessionID uuid.UUID, shortID, cause string)
	LogLoginFailed(ctx context.Context, shortID string)
	LogTransferApplied(ctx context.Context, fromShortID, toShortID, amount string)
	LogTransferRejected(ctx context.Context, fromShortID, toShortID, amount string, reason models.RejectReason)
	LogLoanScheduled(ctx context.Context, taskID uuid.UUID, shortID, amount string, delay time.Duration)
	LogLoanGranted(ctx context.Context, shortID, amount string)
	LogLoanRejected(ctx context.Context, shortID, amount string, reason models.RejectReason)
	LogLoanSkipped(ctx context.Context, taskID uuid.UUID, shortID, cause string)
	LogAccountClosed(ctx context.Context, shortID string)
	LogCloseRejected(ctx context.Context, shortID string, reason models.RejectReason)
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bankist/internal/models"
	"bankist/internal/repositories"

	"github.com/shopspring/decimal"
)

// ErrAuthFailure is returned for an unknown short id and for a wrong PIN alike
var ErrAuthFailure = errors.New("invalid short id or pin")

type ledgerService struct {
	accountRepo repositories.AccountRepositoryInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	clock       repositories.Clock
	logger      *slog.Logger
}

// NewLedgerService creates a ledger over the account set. clock stamps every
// movement; nil means time.Now.
func NewLedgerService(
	accountRepo repositories.AccountRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	clock repositories.Clock,
	logger *slog.Logger,
) LedgerServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ledgerService{
		accountRepo: accountRepo,
		auditLogger: auditLogger,
		metrics:     metrics,
		clock:       clock,
		logger:      logger,
	}
}

// Authenticate looks up the account and compares the PIN
func (s *ledgerService) Authenticate(shortID string, pin int) (*models.Account, error) {
	account, err := s.accountRepo.GetByShortID(shortID)
	if err != nil {
		if !errors.Is(err, repositories.ErrAccountNotFound) {
			s.logger.Error("failed to load account", "error", err, "short_id", shortID)
		}
		return nil, ErrAuthFailure
	}

	if !account.VerifyPIN(pin) {
		return nil, ErrAuthFailure
	}

	return account, nil
}

func (s *ledgerService) Balance(account *models.Account) decimal.Decimal {
	return account.Balance()
}

func (s *ledgerService) Summary(account *models.Account) models.Summary {
	return account.Summary()
}

// Transfer moves amount from sender to the recipient. Every failed
// precondition is a silent reject: no mutation and no error.
func (s *ledgerService) Transfer(ctx context.Context, sender *models.Account, recipientShortID string, amount decimal.Decimal) models.OperationResult {
	start := time.Now()
	if sender == nil {
		return s.recordTransfer(ctx, "", recipientShortID, amount, models.Rejected(models.RejectNoSession), start)
	}

	var result models.OperationResult
	switch {
	case !amount.IsPositive():
		result = models.Rejected(models.RejectInvalidAmount)
	case recipientShortID == sender.ShortID:
		result = models.Rejected(models.RejectSelfTransfer)
	default:
		err := s.accountRepo.ExecuteAtomicTransfer(sender.ShortID, recipientShortID, amount, s.clock)
		result = transferResult(err)
		if err != nil && result.Reason == "" {
			s.logger.Error("transfer failed", "error", err, "from", sender.ShortID, "to", recipientShortID)
		}
	}

	return s.recordTransfer(ctx, sender.ShortID, recipientShortID, amount, result, start)
}

func transferResult(err error) models.OperationResult {
	switch {
	case err == nil:
		return models.Applied()
	case errors.Is(err, repositories.ErrInvalidAmount):
		return models.Rejected(models.RejectInvalidAmount)
	case errors.Is(err, repositories.ErrSameAccount):
		return models.Rejected(models.RejectSelfTransfer)
	case errors.Is(err, repositories.ErrRecipientNotFound):
		return models.Rejected(models.RejectRecipientNotFound)
	case errors.Is(err, repositories.ErrAccountNotFound):
		return models.Rejected(models.RejectAccountNotFound)
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return models.Rejected(models.RejectInsufficientFunds)
	default:
		return models.OperationResult{Status: models.OperationRejected}
	}
}

func (s *ledgerService) recordTransfer(ctx context.Context, from, to string, amount decimal.Decimal, result models.OperationResult, start time.Time) models.OperationResult {
	s.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{
		"status": string(result.Status),
		"reason": string(result.Reason),
	})
	s.metrics.RecordProcessingTime(MetricTransferLatency, time.Since(start))

	if result.Applied() {
		s.metrics.RecordGauge(MetricTransferAmount, amount.InexactFloat64(), nil)
		s.auditLogger.LogTransferApplied(ctx, from, to, amount.String())
	} else {
		s.auditLogger.LogTransferRejected(ctx, from, to, amount.String(), result.Reason)
	}
	return result
}

// CheckLoan floors the requested amount and applies the eligibility rule:
// some movement must be at least LoanCoverageRatio of the floored amount.
func (s *ledgerService) CheckLoan(account *models.Account, amount decimal.Decimal) models.LoanDecision {
	floored := amount.Floor()
	decision := models.LoanDecision{Amount: floored}

	switch {
	case account == nil:
		decision.Reason = models.RejectNoSession
	case !floored.IsPositive():
		decision.Reason = models.RejectInvalidAmount
	case !account.QualifiesForLoan(floored):
		decision.Reason = models.RejectLoanNotEligible
	default:
		decision.Eligible = true
	}

	return decision
}

// GrantLoan credits the account. It is rejected when the account has left the set.
func (s *ledgerService) GrantLoan(ctx context.Context, shortID string, amount decimal.Decimal) models.OperationResult {
	if !amount.IsPositive() {
		s.auditLogger.LogLoanRejected(ctx, shortID, amount.String(), models.RejectInvalidAmount)
		return models.Rejected(models.RejectInvalidAmount)
	}

	if _, err := s.accountRepo.AppendMovement(shortID, amount, s.clock()); err != nil {
		if !errors.Is(err, repositories.ErrAccountNotFound) {
			s.logger.Error("failed to grant loan", "error", err, "short_id", shortID)
		}
		s.metrics.IncrementCounter(MetricLoansTotal, map[string]string{
			"status": string(models.OperationRejected),
			"reason": string(models.RejectAccountNotFound),
		})
		s.auditLogger.LogLoanRejected(ctx, shortID, amount.String(), models.RejectAccountNotFound)
		return models.Rejected(models.RejectAccountNotFound)
	}

	s.metrics.IncrementCounter(MetricLoansTotal, map[string]string{"status": string(models.OperationApplied)})
	s.metrics.RecordGauge(MetricLoanAmount, amount.InexactFloat64(), nil)
	s.auditLogger.LogLoanGranted(ctx, shortID, amount.String())
	return models.Applied()
}

// CloseAccount removes the account when both the short id and the PIN confirm it
func (s *ledgerService) CloseAccount(ctx context.Context, account *models.Account, confirmShortID string, confirmPIN int) models.OperationResult {
	if account == nil {
		return models.Rejected(models.RejectNoSession)
	}

	if confirmShortID != account.ShortID || !account.VerifyPIN(confirmPIN) {
		s.auditLogger.LogCloseRejected(ctx, account.ShortID, models.RejectConfirmationMismatch)
		return models.Rejected(models.RejectConfirmationMismatch)
	}

	if err := s.accountRepo.Remove(account.ShortID); err != nil {
		s.auditLogger.LogCloseRejected(ctx, account.ShortID, models.RejectAccountNotFound)
		return models.Rejected(models.RejectAccountNotFound)
	}

	s.metrics.IncrementCounter(MetricAccountsClosed, nil)
	s.metrics.RecordGauge(MetricAccountsTotal, float64(s.accountRepo.Count()), nil)
	s.auditLogger.LogAccountClosed(ctx, account.ShortID)
	return models.Applied()
}

func (s *ledgerService) SortedMovements(account *models.Account, ascending bool) []models.Movement {
	return account.SortedMovements(ascending)
}

// Account returns a snapshot of the account, or repositories.ErrAccountNotFound
func (s *ledgerService) Account(shortID string) (*models.Account, error) {
	return s.accountRepo.GetByShortID(shortID)
}

func (s *ledgerService) Movements(account *models.Account) []models.Movement {
	return account.Movements()
}

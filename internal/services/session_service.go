package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"bankist/internal/models"
	"bankist/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultLoanApprovalDelay = 2500 * time.Millisecond

// Causes recorded when a session ends
const (
	SessionEndLogout   = "logout"
	SessionEndExpired  = "expired"
	SessionEndClosed   = "closed"
	SessionEndReplaced = "replaced"
	SessionEndShutdown = "shutdown"
)

var ErrNoSession = errors.New("no active session")

// SessionConfig holds the timing knobs of a session
type SessionConfig struct {
	TimeoutTicks      int
	TickInterval      time.Duration
	LoanApprovalDelay time.Duration
}

// Overview is everything the presentation layer renders for the logged-in
// account. It is computed after the triggering mutation has completed.
type Overview struct {
	OwnerName    string
	FirstName    string
	ShortID      string
	Currency     string
	Locale       string
	InterestRate decimal.Decimal
	Balance      decimal.Decimal
	Summary      models.Summary
	Movements    []models.Movement
	Sort         models.SortOrder
	Timer        TimerSnapshot
}

type session struct {
	id      uuid.UUID
	shortID string
	ctx     context.Context
	cancel  context.CancelFunc
}

type sessionService struct {
	mu        sync.Mutex
	current   *session
	ledger    LedgerServiceInterface
	timer     *SessionTimer
	loans     LoanSchedulerInterface
	loanDelay time.Duration

	observersMu sync.RWMutex
	observers   []SessionObserver

	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

func NewSessionService(
	ledger LedgerServiceInterface,
	loans LoanSchedulerInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg SessionConfig,
	logger *slog.Logger,
) SessionServiceInterface {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.LoanApprovalDelay <= 0 {
		cfg.LoanApprovalDelay = DefaultLoanApprovalDelay
	}
	return &sessionService{
		ledger:      ledger,
		timer:       NewSessionTimer(cfg.TimeoutTicks, cfg.TickInterval),
		loans:       loans,
		loanDelay:   cfg.LoanApprovalDelay,
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *sessionService) Subscribe(observer SessionObserver) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()
	s.observers = append(s.observers, observer)
}

// Login authenticates and replaces any existing session. A failed login
// leaves the current session untouched.
func (s *sessionService) Login(ctx context.Context, rawShortID, rawPIN string) (*Overview, error) {
	shortID := validation.NormalizeShortID(rawShortID)

	pin, ok := validation.ParsePIN(rawPIN)
	var account *models.Account
	err := ErrAuthFailure
	if ok {
		account, err = s.ledger.Authenticate(shortID, pin)
	}
	if err != nil {
		s.auditLogger.LogLoginFailed(ctx, shortID)
		s.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event_type": "login_failed"})
		return nil, ErrAuthFailure
	}

	s.mu.Lock()
	replaced := s.endLocked(ctx, SessionEndReplaced)

	sessionCtx, cancel := context.WithCancel(context.Background())
	sess := &session{
		id:      uuid.New(),
		shortID: account.ShortID,
		ctx:     sessionCtx,
		cancel:  cancel,
	}
	s.current = sess
	s.timer.Start(func() { s.expire(sess.id) })

	s.auditLogger.LogSessionStarted(ctx, sess.id, account.ShortID)
	s.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event_type": "started"})
	s.metrics.RecordGauge(MetricActiveSession, 1, nil)

	overview := s.overviewLocked(account, models.SortNone)
	s.mu.Unlock()

	if replaced {
		s.notify(func(o SessionObserver) { o.OnSessionEnd() })
	}
	s.notify(func(o SessionObserver) { o.OnSessionStart(account) })

	return overview, nil
}

// Logout ends the current session, if any
func (s *sessionService) Logout(ctx context.Context) {
	s.end(ctx, SessionEndLogout)
}

// Close ends the session and waits for timer and loan goroutines to finish
func (s *sessionService) Close() {
	s.end(context.Background(), SessionEndShutdown)
	s.loans.Wait()
	s.timer.Wait()
}

func (s *sessionService) end(ctx context.Context, cause string) {
	s.mu.Lock()
	ended := s.endLocked(ctx, cause)
	s.mu.Unlock()

	if ended {
		s.notify(func(o SessionObserver) { o.OnSessionEnd() })
	}
}

func (s *sessionService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Transfer sends money from the session account. Any bad input is a reject.
func (s *sessionService) Transfer(ctx context.Context, rawRecipient, rawAmount string) models.OperationResult {
	s.mu.Lock()

	account, reject := s.accountLocked()
	if account == nil {
		s.mu.Unlock()
		return reject
	}

	amount, _ := validation.ParseAmount(rawAmount)
	result := s.ledger.Transfer(ctx, account, validation.NormalizeShortID(rawRecipient), amount)

	var updated *models.Account
	if result.Applied() {
		s.touchLocked()
		updated, _ = s.ledger.Account(account.ShortID)
	}
	s.mu.Unlock()

	if updated != nil {
		s.notify(func(o SessionObserver) { o.OnLedgerChanged(updated) })
	}
	return result
}

// RequestLoan checks eligibility now and grants the loan after the approval
// delay. The deferred grant is bound to the current session.
func (s *sessionService) RequestLoan(ctx context.Context, rawAmount string) models.OperationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, reject := s.accountLocked()
	if account == nil {
		return reject
	}

	amount, _ := validation.ParseAmount(rawAmount)
	decision := s.ledger.CheckLoan(account, amount)
	if !decision.Eligible {
		s.auditLogger.LogLoanRejected(ctx, account.ShortID, amount.String(), decision.Reason)
		s.metrics.IncrementCounter(MetricLoansTotal, map[string]string{
			"status": string(models.OperationRejected),
			"reason": string(decision.Reason),
		})
		return models.Rejected(decision.Reason)
	}

	sess := s.current
	taskID := s.loans.Schedule(sess.ctx, s.loanDelay, func(taskCtx context.Context, taskID uuid.UUID) {
		s.grantLoan(taskCtx, taskID, sess.id, sess.shortID, decision.Amount)
	})

	s.auditLogger.LogLoanScheduled(ctx, taskID, account.ShortID, decision.Amount.String(), s.loanDelay)
	s.metrics.IncrementCounter(MetricLoansTotal, map[string]string{"status": string(models.OperationScheduled)})
	return models.Scheduled(taskID)
}

func (s *sessionService) grantLoan(ctx context.Context, taskID, sessionID uuid.UUID, shortID string, amount decimal.Decimal) {
	s.mu.Lock()

	if ctx.Err() != nil || s.current == nil || s.current.id != sessionID {
		s.mu.Unlock()
		s.skipLoan(ctx, taskID, shortID, "session_ended")
		return
	}

	if result := s.ledger.GrantLoan(ctx, shortID, amount); !result.Applied() {
		s.mu.Unlock()
		s.skipLoan(ctx, taskID, shortID, string(result.Reason))
		return
	}

	s.touchLocked()
	updated, err := s.ledger.Account(shortID)
	s.mu.Unlock()

	if err == nil {
		s.notify(func(o SessionObserver) { o.OnLedgerChanged(updated) })
	}
}

func (s *sessionService) skipLoan(ctx context.Context, taskID uuid.UUID, shortID, cause string) {
	s.auditLogger.LogLoanSkipped(ctx, taskID, shortID, cause)
	s.metrics.IncrementCounter(MetricLoansTotal, map[string]string{
		"status": "skipped",
		"reason": cause,
	})
}

// CloseAccount removes the session account once the short id and PIN are
// confirmed, then ends the session.
func (s *sessionService) CloseAccount(ctx context.Context, rawShortID, rawPIN string) models.OperationResult {
	s.mu.Lock()

	account, reject := s.accountLocked()
	if account == nil {
		s.mu.Unlock()
		return reject
	}

	pin, ok := validation.ParsePIN(rawPIN)
	if !ok {
		s.mu.Unlock()
		s.auditLogger.LogCloseRejected(ctx, account.ShortID, models.RejectConfirmationMismatch)
		return models.Rejected(models.RejectConfirmationMismatch)
	}

	result := s.ledger.CloseAccount(ctx, account, validation.NormalizeShortID(rawShortID), pin)
	ended := false
	if result.Applied() {
		ended = s.endLocked(ctx, SessionEndClosed)
	}
	s.mu.Unlock()

	if ended {
		s.notify(func(o SessionObserver) { o.OnSessionEnd() })
	}
	return result
}

// Overview returns the current account view with movements in the given order
func (s *sessionService) Overview(order models.SortOrder) (*Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, _ := s.accountLocked()
	if account == nil {
		return nil, ErrNoSession
	}
	return s.overviewLocked(account, order), nil
}

func (s *sessionService) Timer() TimerSnapshot {
	return s.timer.Snapshot()
}

// expire runs on the timer goroutine. It is a no-op when the session that
// armed the timer is gone or the timer was restarted in the meantime.
func (s *sessionService) expire(sessionID uuid.UUID) {
	s.mu.Lock()
	if s.current == nil || s.current.id != sessionID || s.timer.State() != models.TimerExpired {
		s.mu.Unlock()
		return
	}
	s.endLocked(context.Background(), SessionEndExpired)
	s.mu.Unlock()

	s.notify(func(o SessionObserver) { o.OnSessionExpired() })
	s.notify(func(o SessionObserver) { o.OnSessionEnd() })
}

// touchLocked restarts the countdown after applied activity. The last tick
// may already have expired the count while expire waits for s.mu; the
// activity wins and a fresh run replaces it, so the pending expire is a no-op.
func (s *sessionService) touchLocked() {
	if s.timer.Reset() {
		return
	}
	sess := s.current
	if sess == nil || s.timer.State() != models.TimerExpired {
		return
	}
	s.timer.Start(func() { s.expire(sess.id) })
}

// endLocked tears down the current session and cancels its pending loans.
// It reports whether a session was ended.
func (s *sessionService) endLocked(ctx context.Context, cause string) bool {
	sess := s.current
	if sess == nil {
		return false
	}

	sess.cancel()
	s.timer.Stop()
	s.current = nil

	s.auditLogger.LogSessionEnded(ctx, sess.id, sess.shortID, cause)
	s.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event_type": cause})
	s.metrics.RecordGauge(MetricActiveSession, 0, nil)
	return true
}

// accountLocked loads a fresh snapshot of the session account
func (s *sessionService) accountLocked() (*models.Account, models.OperationResult) {
	if s.current == nil {
		return nil, models.Rejected(models.RejectNoSession)
	}

	account, err := s.ledger.Account(s.current.shortID)
	if err != nil {
		return nil, models.Rejected(models.RejectAccountNotFound)
	}
	return account, models.OperationResult{}
}

func (s *sessionService) overviewLocked(account *models.Account, order models.SortOrder) *Overview {
	var movements []models.Movement
	switch order {
	case models.SortAscending:
		movements = s.ledger.SortedMovements(account, true)
	case models.SortDescending:
		movements = s.ledger.SortedMovements(account, false)
	default:
		order = models.SortNone
		movements = s.ledger.Movements(account)
	}

	return &Overview{
		OwnerName:    account.OwnerName,
		FirstName:    account.FirstName(),
		ShortID:      account.ShortID,
		Currency:     account.Currency,
		Locale:       account.Locale,
		InterestRate: account.InterestRate,
		Balance:      s.ledger.Balance(account),
		Summary:      s.ledger.Summary(account),
		Movements:    movements,
		Sort:         order,
		Timer:        s.timer.Snapshot(),
	}
}

func (s *sessionService) notify(fn func(SessionObserver)) {
	s.observersMu.RLock()
	observers := make([]SessionObserver, len(s.observers))
	copy(observers, s.observers)
	s.observersMu.RUnlock()

	for _, o := range observers {
		fn(o)
	}
}

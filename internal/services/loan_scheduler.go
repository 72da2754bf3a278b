package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LoanScheduler runs each task on its own goroutine after a delay. A task
// whose context is done before the delay elapses is dropped without running.
type LoanScheduler struct {
	mu      sync.Mutex
	pending map[uuid.UUID]struct{}
	wg      sync.WaitGroup
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewLoanScheduler(metrics MetricsRecorderInterface, logger *slog.Logger) *LoanScheduler {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanScheduler{
		pending: make(map[uuid.UUID]struct{}),
		metrics: metrics,
		logger:  logger,
	}
}

// Schedule registers fn to run after delay and returns the task id
func (s *LoanScheduler) Schedule(ctx context.Context, delay time.Duration, fn LoanTask) uuid.UUID {
	taskID := uuid.New()

	s.mu.Lock()
	s.pending[taskID] = struct{}{}
	s.reportPendingLocked()
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx, taskID, delay, fn)

	return taskID
}

func (s *LoanScheduler) run(ctx context.Context, taskID uuid.UUID, delay time.Duration, fn LoanTask) {
	defer s.wg.Done()
	defer s.done(taskID)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.Debug("scheduled task cancelled",
			slog.String("task_id", taskID.String()),
		)
		return
	case <-timer.C:
	}

	// the context may have been cancelled in the same instant the delay elapsed
	if ctx.Err() != nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked",
				slog.String("task_id", taskID.String()),
				slog.Any("panic", r),
			)
		}
	}()
	fn(ctx, taskID)
}

func (s *LoanScheduler) done(taskID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, taskID)
	s.reportPendingLocked()
}

func (s *LoanScheduler) reportPendingLocked() {
	s.metrics.RecordGauge(MetricPendingLoans, float64(len(s.pending)), nil)
}

// Pending returns the number of tasks that have not finished yet
func (s *LoanScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Wait blocks until every scheduled task has run or been dropped
func (s *LoanScheduler) Wait() {
	s.wg.Wait()
}

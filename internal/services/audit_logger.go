package services

import (
	"context"
	"log/slog"
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey is the context key carrying the request trace id
const CorrelationIDKey contextKey = "correlation_id"

// AuditLogger writes ledger and session events as structured log lines.
// PINs never reach it.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogSessionStarted(ctx context.Context, sessionID uuid.UUID, shortID string) {
	al.logger.InfoContext(ctx, "session started",
		slog.String("event_type", "session_started"),
		slog.String("session_id", sessionID.String()),
		slog.String("short_id", shortID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSessionEnded(ctx context.Context, sessionID uuid.UUID, shortID, cause string) {
	level := slog.LevelInfo
	if cause == SessionEndExpired {
		level = slog.LevelWarn
	}
	al.logger.LogAttrs(ctx, level, "session ended",
		slog.String("event_type", "session_"+cause),
		slog.String("session_id", sessionID.String()),
		slog.String("short_id", shortID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoginFailed(ctx context.Context, shortID string) {
	al.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "login_failed"),
		slog.String("short_id", shortID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferApplied(ctx context.Context, fromShortID, toShortID, amount string) {
	al.logger.InfoContext(ctx, "transfer applied",
		slog.String("event_type", "transfer_applied"),
		slog.String("from_short_id", fromShortID),
		slog.String("to_short_id", toShortID),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferRejected(ctx context.Context, fromShortID, toShortID, amount string, reason models.RejectReason) {
	al.logger.InfoContext(ctx, "transfer rejected",
		slog.String("event_type", "transfer_rejected"),
		slog.String("from_short_id", fromShortID),
		slog.String("to_short_id", toShortID),
		slog.String("amount", amount),
		slog.String("reason", string(reason)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoanScheduled(ctx context.Context, taskID uuid.UUID, shortID, amount string, delay time.Duration) {
	al.logger.InfoContext(ctx, "loan scheduled",
		slog.String("event_type", "loan_scheduled"),
		slog.String("task_id", taskID.String()),
		slog.String("short_id", shortID),
		slog.String("amount", amount),
		slog.Int64("delay_ms", delay.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoanGranted(ctx context.Context, shortID, amount string) {
	al.logger.InfoContext(ctx, "loan granted",
		slog.String("event_type", "loan_granted"),
		slog.String("short_id", shortID),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogLoanRejected(ctx context.Context, shortID, amount string, reason models.RejectReason) {
	al.logger.InfoContext(ctx, "loan rejected",
		slog.String("event_type", "loan_rejected"),
		slog.String("short_id", shortID),
		slog.String("amount", amount),
		slog.String("reason", string(reason)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoanSkipped(ctx context.Context, taskID uuid.UUID, shortID, cause string) {
	al.logger.WarnContext(ctx, "loan skipped",
		slog.String("event_type", "loan_skipped"),
		slog.String("task_id", taskID.String()),
		slog.String("short_id", shortID),
		slog.String("cause", cause),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogAccountClosed(ctx context.Context, shortID string) {
	al.logger.InfoContext(ctx, "account closed",
		slog.String("event_type", "account_closed"),
		slog.String("short_id", shortID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCloseRejected(ctx context.Context, shortID string, reason models.RejectReason) {
	al.logger.InfoContext(ctx, "account close rejected",
		slog.String("event_type", "close_rejected"),
		slog.String("short_id", shortID),
		slog.String("reason", string(reason)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}

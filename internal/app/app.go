// Package app wires the ledger core shared by the HTTP server and the
// terminal client.
package app

import (
	"fmt"
	"log/slog"

	"bankist/internal/config"
	"bankist/internal/repositories"
	"bankist/internal/seed"
	"bankist/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds the process-wide services
type App struct {
	Config      *config.Config
	Registry    *prometheus.Registry
	Metrics     services.MetricsRecorderInterface
	Accounts    repositories.AccountRepositoryInterface
	Ledger      services.LedgerServiceInterface
	Loans       *services.LoanScheduler
	Sessions    services.SessionServiceInterface
	Credentials []seed.Credential
}

// New builds the account set, seeds it and starts the session service
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)

	accounts := repositories.NewAccountRepository()
	credentials, err := seed.Load(accounts, seed.Options{
		GeneratedAccounts: cfg.Seed.GeneratedAccounts,
		FakerSeed:         cfg.Seed.FakerSeed,
		PINHashCost:       cfg.Security.PINHashCost,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to seed accounts: %w", err)
	}
	metrics.RecordGauge(services.MetricAccountsTotal, float64(accounts.Count()), nil)

	auditLogger := services.NewAuditLogger(logger)
	ledger := services.NewLedgerService(accounts, auditLogger, metrics, nil, logger)
	loans := services.NewLoanScheduler(metrics, logger)
	sessions := services.NewSessionService(ledger, loans, auditLogger, metrics, services.SessionConfig{
		TimeoutTicks:      cfg.Session.TimeoutTicks,
		TickInterval:      cfg.Session.TickInterval,
		LoanApprovalDelay: cfg.Session.LoanApprovalDelay,
	}, logger)

	return &App{
		Config:      cfg,
		Registry:    registry,
		Metrics:     metrics,
		Accounts:    accounts,
		Ledger:      ledger,
		Loans:       loans,
		Sessions:    sessions,
		Credentials: credentials,
	}, nil
}

// Close ends the active session and waits for pending loans to settle
func (a *App) Close() {
	a.Sessions.Close()
}

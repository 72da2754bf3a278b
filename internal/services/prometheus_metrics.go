package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricSessionEvent    = "session_event"
	MetricTransfersTotal  = "transfers_total"
	MetricLoansTotal      = "loans_total"
	MetricAccountsClosed  = "accounts_closed"
	MetricTransferLatency = "transfer_duration"
	MetricTransferAmount  = "transfer_amount"
	MetricLoanAmount      = "loan_amount"
	MetricActiveSession   = "active_session"
	MetricPendingLoans    = "pending_loans"
	MetricAccountsTotal   = "accounts"
)

type PrometheusMetrics struct {
	sessionEventsTotal *prometheus.CounterVec
	transfersTotal     *prometheus.CounterVec
	transferDuration   prometheus.Histogram
	transferAmount     prometheus.Histogram
	loansTotal         *prometheus.CounterVec
	loanAmount         prometheus.Histogram
	accountsClosed     prometheus.Counter
	activeSession      prometheus.Gauge
	pendingLoans       prometheus.Gauge
	accountsTotal      prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger collectors with reg. A nil reg
// uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		sessionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_session_events_total",
				Help: "Total number of session lifecycle events",
			},
			[]string{"event_type"},
		),
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_transfers_total",
				Help: "Total number of transfers by outcome",
			},
			[]string{"status", "reason"},
		),
		transferDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bankist_transfer_duration_microseconds",
				Help:    "Transfer processing duration in microseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bankist_transfer_amount",
				Help:    "Applied transfer amount in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		loansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_loans_total",
				Help: "Total number of loan requests by outcome",
			},
			[]string{"status", "reason"},
		),
		loanAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bankist_loan_amount",
				Help:    "Granted loan amount in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		accountsClosed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bankist_accounts_closed_total",
				Help: "Total number of closed accounts",
			},
		),
		activeSession: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankist_active_session",
				Help: "1 while a session is active",
			},
		),
		pendingLoans: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankist_pending_loans",
				Help: "Number of scheduled loans not yet fired",
			},
		),
		accountsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankist_accounts",
				Help: "Current number of accounts in the account set",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]
	reason := tags["reason"]

	switch name {
	case MetricSessionEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.sessionEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricTransfersTotal:
		if status != "" {
			m.transfersTotal.WithLabelValues(status, reason).Inc()
		}
	case MetricLoansTotal:
		if status != "" {
			m.loansTotal.WithLabelValues(status, reason).Inc()
		}
	case MetricAccountsClosed:
		m.accountsClosed.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricTransferLatency:
		m.transferDuration.Observe(float64(duration.Microseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricTransferAmount:
		m.transferAmount.Observe(value)
	case MetricLoanAmount:
		m.loanAmount.Observe(value)
	case MetricActiveSession:
		m.activeSession.Set(value)
	case MetricPendingLoans:
		m.pendingLoans.Set(value)
	case MetricAccountsTotal:
		m.accountsTotal.Set(value)
	}
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)     {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}

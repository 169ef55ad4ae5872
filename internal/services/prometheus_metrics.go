package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statementsParsed       *prometheus.CounterVec
	statementsRejected     *prometheus.CounterVec
	statementParseDuration prometheus.Histogram
	statementIncomeRows    prometheus.Histogram
	statementRowsSkipped   *prometheus.CounterVec
	verificationsTotal     *prometheus.CounterVec
	verificationsReused    prometheus.Counter
	verificationDuration   prometheus.Histogram
	auditWriteFailures     prometheus.Counter
}

// NewPrometheusMetrics registers the service metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

func NewPrometheusMetricsWithRegistry(registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		statementsParsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_parsed_total",
				Help: "Total number of bank statements parsed",
			},
			[]string{"layout", "outcome"},
		),
		statementsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_rejected_total",
				Help: "Total number of statements rejected before parsing",
			},
			[]string{"reason"},
		),
		statementParseDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_parse_duration_milliseconds",
				Help:    "Statement parsing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		statementIncomeRows: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_income_rows",
				Help:    "Number of rows classified as income per statement",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		statementRowsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rows_skipped_total",
				Help: "Total number of statement rows skipped or dropped by reason",
			},
			[]string{"reason"},
		),
		verificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "income_verifications_total",
				Help: "Total number of income verifications by status",
			},
			[]string{"status"},
		),
		verificationsReused: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "income_verifications_reused_total",
				Help: "Total number of verifications answered from an earlier identical statement",
			},
		),
		verificationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "income_verification_duration_milliseconds",
				Help:    "Income verification duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		auditWriteFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "audit_write_failures_total",
				Help: "Total number of audit log entries that could not be stored",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "statement_parsed":
		m.statementsParsed.WithLabelValues(tags["layout"], tags["outcome"]).Inc()
	case "statement_rejected":
		if reason := tags["reason"]; reason != "" {
			m.statementsRejected.WithLabelValues(reason).Inc()
		}
	case "statement_row_skipped":
		if reason := tags["reason"]; reason != "" {
			m.statementRowsSkipped.WithLabelValues(reason).Inc()
		}
	case "income_verification":
		if status := tags["status"]; status != "" {
			m.verificationsTotal.WithLabelValues(status).Inc()
		}
	case "income_verification_reused":
		m.verificationsReused.Inc()
	case "audit_write_failed":
		m.auditWriteFailures.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "statement_parse":
		m.statementParseDuration.Observe(float64(duration.Milliseconds()))
	case "income_verification":
		m.verificationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "statement_income_rows":
		m.statementIncomeRows.Observe(value)
	}
}

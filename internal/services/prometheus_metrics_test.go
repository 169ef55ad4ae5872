package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type PrometheusMetricsTestSuite struct {
	suite.Suite
	registry *prometheus.Registry
	metrics  *PrometheusMetrics
}

func (s *PrometheusMetricsTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	s.metrics = NewPrometheusMetricsWithRegistry(s.registry)
}

func TestPrometheusMetricsSuite(t *testing.T) {
	suite.Run(t, new(PrometheusMetricsTestSuite))
}

func (s *PrometheusMetricsTestSuite) TestStatementCounters() {
	s.metrics.IncrementCounter("statement_parsed", map[string]string{"layout": "english", "outcome": "income"})
	s.metrics.IncrementCounter("statement_parsed", map[string]string{"layout": "english", "outcome": "income"})
	s.metrics.IncrementCounter("statement_row_skipped", map[string]string{"reason": "debit"})
	s.metrics.IncrementCounter("statement_row_skipped", map[string]string{"reason": ""})
	s.metrics.IncrementCounter("statement_rejected", map[string]string{"reason": "too_large"})

	s.Equal(2.0, testutil.ToFloat64(s.metrics.statementsParsed.WithLabelValues("english", "income")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.statementRowsSkipped.WithLabelValues("debit")))
	s.Equal(1, testutil.CollectAndCount(s.metrics.statementRowsSkipped))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.statementsRejected.WithLabelValues("too_large")))
}

func (s *PrometheusMetricsTestSuite) TestVerificationCounters() {
	s.metrics.IncrementCounter("income_verification", map[string]string{"status": "confirmed"})
	s.metrics.IncrementCounter("income_verification_reused", nil)
	s.metrics.IncrementCounter("audit_write_failed", map[string]string{"action": "income_verified"})
	s.metrics.IncrementCounter("unknown_metric", nil)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.verificationsTotal.WithLabelValues("confirmed")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.verificationsReused))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.auditWriteFailures))
}

func (s *PrometheusMetricsTestSuite) TestHistograms() {
	s.metrics.RecordProcessingTime("statement_parse", 3*time.Millisecond)
	s.metrics.RecordProcessingTime("income_verification", 12*time.Millisecond)
	s.metrics.RecordGauge("statement_income_rows", 5, nil)

	s.Equal(1, testutil.CollectAndCount(s.metrics.statementParseDuration))
	s.Equal(1, testutil.CollectAndCount(s.metrics.verificationDuration))
	s.Equal(1, testutil.CollectAndCount(s.metrics.statementIncomeRows))
}

func (s *PrometheusMetricsTestSuite) TestRegistersWithRegistry() {
	s.metrics.IncrementCounter("income_verification_reused", nil)

	families, err := s.registry.Gather()
	s.Require().NoError(err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	s.Contains(names, "income_verifications_reused_total")
}

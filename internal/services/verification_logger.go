package services

import (
	"context"
	"log/slog"
	"time"

	"credit-backoffice/internal/models"
	"credit-backoffice/internal/statement"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID attaches the request trace ID to ctx so service logs can be joined with access logs
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

type VerificationLogger struct {
	logger *slog.Logger
}

func NewVerificationLogger(logger *slog.Logger) VerificationLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerificationLogger{
		logger: logger,
	}
}

func (vl *VerificationLogger) LogStatementParsed(ctx context.Context, report *statement.IncomeReport, durationMs int64) {
	vl.logger.InfoContext(ctx, "statement parsed",
		slog.String("event_type", "statement_parsed"),
		slog.Int("transaction_count", report.TransactionCount),
		slog.Int("income_count", len(report.Incomes)),
		slog.Int("skipped_count", len(report.Diagnostics)),
		slog.Int("period_months", report.PeriodMonths),
		slog.String("total_income", report.TotalIncome.StringFixed(2)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (vl *VerificationLogger) LogVerificationReused(ctx context.Context, verification *models.IncomeVerification) {
	vl.logger.InfoContext(ctx, "income verification reused",
		slog.String("event_type", "income_verification_reused"),
		slog.String("verification_id", verification.ID.String()),
		slog.String("application_ref", verification.ApplicationRef),
		slog.String("status", verification.Status),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (vl *VerificationLogger) LogVerificationCompleted(ctx context.Context, verification *models.IncomeVerification, durationMs int64) {
	vl.logger.InfoContext(ctx, "income verification completed",
		slog.String("event_type", "income_verification_completed"),
		slog.String("verification_id", verification.ID.String()),
		slog.String("application_ref", verification.ApplicationRef),
		slog.String("status", verification.Status),
		slog.String("average_monthly_income", verification.AverageMonthlyIncome.StringFixed(2)),
		slog.String("required_monthly_income", verification.RequiredMonthlyIncome.StringFixed(2)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (vl *VerificationLogger) LogVerificationFailed(ctx context.Context, applicationRef string, errorMsg string) {
	vl.logger.WarnContext(ctx, "income verification failed",
		slog.String("event_type", "income_verification_failed"),
		slog.String("application_ref", applicationRef),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (vl *VerificationLogger) LogAuditWriteFailed(ctx context.Context, action string, errorMsg string) {
	vl.logger.ErrorContext(ctx, "audit log write failed",
		slog.String("event_type", "audit_write_failed"),
		slog.String("action", action),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the trace ID attached by WithCorrelationID
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}

package services

import (
	"context"
	"time"

	"credit-backoffice/internal/models"
	"credit-backoffice/internal/statement"

	"github.com/google/uuid"
)

// IncomeVerificationServiceInterface turns bank statements into income decisions
type IncomeVerificationServiceInterface interface {
	ParseStatement(ctx context.Context, text string) (*statement.IncomeReport, error)
	VerifyIncome(ctx context.Context, input models.VerifyIncomeInput) (*models.IncomeVerification, bool, error)
	GetVerification(ctx context.Context, id uuid.UUID) (*models.IncomeVerification, error)
	ListApplicationVerifications(ctx context.Context, applicationRef string, offset, limit int) ([]models.IncomeVerification, int64, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	LogStatementParsed(ctx context.Context, actor models.Actor, report *statement.IncomeReport) error
	LogIncomeVerified(ctx context.Context, actor models.Actor, verification *models.IncomeVerification, reused bool) error
	LogVerificationViewed(ctx context.Context, actor models.Actor, verification *models.IncomeVerification) error
	LogVerificationsListed(ctx context.Context, actor models.Actor, applicationRef string, count int) error
	GetResourceActivity(ctx context.Context, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetUserActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	PurgeExpired(ctx context.Context, retention time.Duration) (int64, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(subject models.Principal) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type VerificationLoggerInterface interface {
	LogStatementParsed(ctx context.Context, report *statement.IncomeReport, durationMs int64)
	LogVerificationReused(ctx context.Context, verification *models.IncomeVerification)
	LogVerificationCompleted(ctx context.Context, verification *models.IncomeVerification, durationMs int64)
	LogVerificationFailed(ctx context.Context, applicationRef string, errorMsg string)
	LogAuditWriteFailed(ctx context.Context, action string, errorMsg string)
}

// CircuitBreakerInterface guards a flaky dependency
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// SampleStatementGeneratorInterface produces synthetic statements with a known income
type SampleStatementGeneratorInterface interface {
	Generate(req models.SampleStatementRequest) (*models.SampleStatement, error)
}

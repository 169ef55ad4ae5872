package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"credit-backoffice/internal/models"
	"credit-backoffice/internal/repositories"
	"credit-backoffice/internal/statement"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations. Writes stop reaching the
// repository while the breaker is open.
type AuditService struct {
	repo    repositories.AuditLogRepositoryInterface
	breaker CircuitBreakerInterface
}

// NewAuditService creates a new audit service; a nil breaker gets the default settings
func NewAuditService(repo repositories.AuditLogRepositoryInterface, breaker CircuitBreakerInterface) AuditServiceInterface {
	if breaker == nil {
		breaker = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}

	return &AuditService{
		repo:    repo,
		breaker: breaker,
	}
}

var (
	ErrInvalidAuditLog       = errors.New("invalid audit log")
	ErrInvalidAuditFilter    = errors.New("resource and resource ID are required")
	ErrInvalidAuditRetention = errors.New("audit retention must be positive")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionStatementParsed:    true,
		models.AuditActionIncomeVerified:     true,
		models.AuditActionVerificationReused: true,
		models.AuditActionVerificationViewed: true,
		models.AuditActionVerificationListed: true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// LogStatementParsed records an ad-hoc statement parse. The statement text itself is never stored.
func (s *AuditService) LogStatementParsed(ctx context.Context, actor models.Actor, report *statement.IncomeReport) error {
	if report == nil {
		return ErrInvalidAuditLog
	}

	log := newAuditLog(actor, models.AuditActionStatementParsed, models.AuditResourceStatement, "")
	log.SetMetadata("transaction_count", report.TransactionCount)
	log.SetMetadata("income_count", len(report.Incomes))
	log.SetMetadata("total_income", report.TotalIncome.StringFixed(2))
	return s.create(ctx, log)
}

// LogIncomeVerified records a verification decision, new or answered from an earlier one
func (s *AuditService) LogIncomeVerified(ctx context.Context, actor models.Actor, verification *models.IncomeVerification, reused bool) error {
	if verification == nil {
		return ErrInvalidAuditLog
	}

	action := models.AuditActionIncomeVerified
	if reused {
		action = models.AuditActionVerificationReused
	}

	log := newAuditLog(actor, action, models.AuditResourceIncomeVerification, verification.ApplicationRef)
	log.SetMetadata("verification_id", verification.ID.String())
	log.SetMetadata("status", verification.Status)
	log.SetMetadata("statement_digest", verification.StatementDigest)
	return s.create(ctx, log)
}

func (s *AuditService) LogVerificationViewed(ctx context.Context, actor models.Actor, verification *models.IncomeVerification) error {
	if verification == nil {
		return ErrInvalidAuditLog
	}

	log := newAuditLog(actor, models.AuditActionVerificationViewed, models.AuditResourceIncomeVerification, verification.ApplicationRef)
	log.SetMetadata("verification_id", verification.ID.String())
	return s.create(ctx, log)
}

func (s *AuditService) LogVerificationsListed(ctx context.Context, actor models.Actor, applicationRef string, count int) error {
	log := newAuditLog(actor, models.AuditActionVerificationListed, models.AuditResourceIncomeVerification, applicationRef)
	log.SetMetadata("count", count)
	return s.create(ctx, log)
}

// GetResourceActivity returns the audit history of one resource, newest first
func (s *AuditService) GetResourceActivity(ctx context.Context, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if resource == "" || resourceID == "" {
		return nil, 0, ErrInvalidAuditFilter
	}

	return s.repo.GetByResource(ctx, resource, resourceID, offset, limit)
}

// GetUserActivity returns everything one officer did, newest first
func (s *AuditService) GetUserActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidAuditFilter
	}

	return s.repo.GetByUserID(ctx, userID, offset, limit)
}

// PurgeExpired deletes audit entries older than retention
func (s *AuditService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidAuditRetention
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}

	return deleted, nil
}

func (s *AuditService) create(ctx context.Context, log *models.AuditLog) error {
	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if s.breaker.IsOpen() {
		return fmt.Errorf("audit store unavailable: %w", ErrCircuitBreakerOpen)
	}

	if err := s.repo.Create(ctx, log); err != nil {
		s.breaker.RecordFailure()
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	s.breaker.RecordSuccess()
	return nil
}

func newAuditLog(actor models.Actor, action, resource, resourceID string) *models.AuditLog {
	log := &models.AuditLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	}
	if actor.UserID != uuid.Nil {
		userID := actor.UserID
		log.UserID = &userID
	}
	return log
}

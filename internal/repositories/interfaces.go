package repositories

import (
	"context"
	"time"

	"credit-backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeVerificationRepositoryInterface defines the contract for income verification storage
type IncomeVerificationRepositoryInterface interface {
	Create(ctx context.Context, verification *models.IncomeVerification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.IncomeVerification, error)
	GetByApplicationAndDigest(ctx context.Context, applicationRef, digest string, declared decimal.Decimal) (*models.IncomeVerification, error)
	ListByApplication(ctx context.Context, applicationRef string, offset, limit int) ([]models.IncomeVerification, int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(ctx context.Context, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}

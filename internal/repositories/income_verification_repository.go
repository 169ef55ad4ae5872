package repositories

import (
	"context"
	"errors"
	"fmt"

	"credit-backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrIncomeVerificationNotFound = errors.New("income verification not found")

// IncomeVerificationRepository handles database operations for income verifications
type IncomeVerificationRepository struct {
	db *gorm.DB
}

// NewIncomeVerificationRepository creates a new income verification repository
func NewIncomeVerificationRepository(db *gorm.DB) IncomeVerificationRepositoryInterface {
	return &IncomeVerificationRepository{
		db: db,
	}
}

func (r *IncomeVerificationRepository) Create(ctx context.Context, verification *models.IncomeVerification) error {
	if verification == nil {
		return errors.New("income verification cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(verification).Error; err != nil {
		return fmt.Errorf("failed to create income verification: %w", err)
	}

	return nil
}

func (r *IncomeVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.IncomeVerification, error) {
	var verification models.IncomeVerification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&verification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeVerificationNotFound
		}
		return nil, fmt.Errorf("failed to get income verification by ID: %w", err)
	}

	return &verification, nil
}

// GetByApplicationAndDigest finds an earlier verification of the same statement
// for the same application made against the same declared income
func (r *IncomeVerificationRepository) GetByApplicationAndDigest(ctx context.Context, applicationRef, digest string, declared decimal.Decimal) (*models.IncomeVerification, error) {
	var verification models.IncomeVerification
	err := r.db.WithContext(ctx).
		Where("application_ref = ? AND statement_digest = ? AND declared_monthly_income = ?",
			applicationRef, digest, declared.StringFixed(2)).
		First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeVerificationNotFound
		}
		return nil, fmt.Errorf("failed to get income verification by digest: %w", err)
	}

	return &verification, nil
}

// ListByApplication returns verifications for an application, newest first
func (r *IncomeVerificationRepository) ListByApplication(ctx context.Context, applicationRef string, offset, limit int) ([]models.IncomeVerification, int64, error) {
	var verifications []models.IncomeVerification
	var total int64

	query := r.db.WithContext(ctx).Model(&models.IncomeVerification{}).Where("application_ref = ?", applicationRef)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count income verifications: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&verifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list income verifications: %w", err)
	}

	return verifications, total, nil
}

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	VerificationStatusConfirmed    = "confirmed"
	VerificationStatusInsufficient = "insufficient"
	VerificationStatusNoIncome     = "no_income"

	// StatementDigestLength is the hex length of a BLAKE2b-256 digest
	StatementDigestLength = 64
)

var (
	ErrInvalidVerificationStatus = errors.New("invalid income verification status")
	ErrInvalidStatementDigest    = errors.New("statement digest must be a 64 character hex string")
	ErrNegativeIncomeAmount      = errors.New("income amounts cannot be negative")
)

// IncomeVerification is the stored outcome of checking an applicant's
// statement against the income they declared. Parsed transactions are not
// persisted, only the aggregate figures.
type IncomeVerification struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ApplicationRef   string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_income_verifications_app_digest,priority:1" json:"application_ref"`
	ApplicantID      string     `gorm:"type:varchar(64);not null;index" json:"applicant_id"`
	RequestedBy      string     `gorm:"type:varchar(64)" json:"requested_by,omitempty"`
	StatementDigest  string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_income_verifications_app_digest,priority:2" json:"statement_digest"`
	Layout           string     `gorm:"type:varchar(20);not null" json:"layout"`
	PeriodStart      *time.Time `json:"period_start,omitempty"`
	PeriodEnd        *time.Time `json:"period_end,omitempty"`
	PeriodMonths     int        `gorm:"not null;default:1" json:"period_months"`
	TransactionCount int        `gorm:"not null;default:0" json:"transaction_count"`
	IncomeCount      int        `gorm:"not null;default:0" json:"income_count"`
	SkippedCount     int        `gorm:"not null;default:0" json:"skipped_count"`

	TotalIncome           decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"total_income"`
	AverageMonthlyIncome  decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"average_monthly_income"`
	DeclaredMonthlyIncome decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0;uniqueIndex:idx_income_verifications_app_digest,priority:3" json:"declared_monthly_income"`
	RequiredMonthlyIncome decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"required_monthly_income"`

	Status     string    `gorm:"type:varchar(20);not null;index" json:"status"`
	ComputedAt time.Time `gorm:"not null" json:"computed_at"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (v *IncomeVerification) TableName() string {
	return "income_verifications"
}

// BeforeCreate hook for IncomeVerification
func (v *IncomeVerification) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	now := time.Now()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if v.ComputedAt.IsZero() {
		v.ComputedAt = now
	}
	if v.PeriodMonths < 1 {
		v.PeriodMonths = 1
	}

	return v.Validate()
}

// Validate validates the verification fields
func (v *IncomeVerification) Validate() error {
	if v.ApplicationRef == "" {
		return errors.New("application reference is required")
	}

	if v.ApplicantID == "" {
		return errors.New("applicant ID is required")
	}

	if len(v.StatementDigest) != StatementDigestLength {
		return ErrInvalidStatementDigest
	}

	if !IsValidVerificationStatus(v.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidVerificationStatus, v.Status)
	}

	if v.PeriodMonths < 1 {
		return errors.New("period months must be at least 1")
	}

	for _, amount := range []decimal.Decimal{v.TotalIncome, v.AverageMonthlyIncome, v.DeclaredMonthlyIncome, v.RequiredMonthlyIncome} {
		if amount.IsNegative() {
			return ErrNegativeIncomeAmount
		}
	}

	return nil
}

// IsConfirmed reports whether the statement supports the declared income
func (v *IncomeVerification) IsConfirmed() bool {
	return v.Status == VerificationStatusConfirmed
}

// IsValidVerificationStatus checks if the status is valid
func IsValidVerificationStatus(status string) bool {
	switch status {
	case VerificationStatusConfirmed, VerificationStatusInsufficient, VerificationStatusNoIncome:
		return true
	default:
		return false
	}
}

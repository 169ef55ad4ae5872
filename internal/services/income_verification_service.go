package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"credit-backoffice/internal/config"
	"credit-backoffice/internal/models"
	"credit-backoffice/internal/repositories"
	"credit-backoffice/internal/statement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var (
	ErrEmptyStatement           = errors.New("statement text is empty")
	ErrStatementTooLarge        = errors.New("statement exceeds the maximum size")
	ErrInvalidVerificationInput = errors.New("invalid income verification input")
	ErrInvalidVerificationID    = errors.New("invalid income verification ID")
	ErrVerificationNotFound     = errors.New("income verification not found")
)

// IncomeVerificationService parses applicant statements and decides whether
// they support the income declared on a credit application
type IncomeVerificationService struct {
	repo         repositories.IncomeVerificationRepositoryInterface
	auditService AuditServiceInterface
	parser       *statement.Parser
	maxBytes     int64
	verification config.VerificationConfig
	metrics      MetricsRecorderInterface
	logger       VerificationLoggerInterface
}

// NewStatementParser builds the parser for the configured statement layout
func NewStatementParser(cfg config.StatementConfig, logger *slog.Logger) (*statement.Parser, error) {
	layout, err := statement.LayoutByName(cfg.Layout)
	if err != nil {
		return nil, err
	}

	return statement.NewParser(
		statement.WithLayout(layout),
		statement.WithExcludedSources(cfg.ExcludedSources...),
		statement.WithLogger(logger),
	), nil
}

// NewIncomeVerificationService creates a new income verification service
func NewIncomeVerificationService(
	repo repositories.IncomeVerificationRepositoryInterface,
	auditService AuditServiceInterface,
	parser *statement.Parser,
	cfg *config.Config,
	metrics MetricsRecorderInterface,
	logger VerificationLoggerInterface,
) IncomeVerificationServiceInterface {
	return &IncomeVerificationService{
		repo:         repo,
		auditService: auditService,
		parser:       parser,
		maxBytes:     cfg.Statement.MaxBytes,
		verification: cfg.Verification,
		metrics:      metrics,
		logger:       logger,
	}
}

// ParseStatement runs the statement parser over already extracted text.
// Nothing is persisted.
func (s *IncomeVerificationService) ParseStatement(ctx context.Context, text string) (*statement.IncomeReport, error) {
	if err := s.checkStatement(text); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.parse(ctx, text), nil
}

// VerifyIncome parses the statement and stores the decision for the application.
// A statement already verified for the same application against the same
// declared income is answered from the stored decision, and the returned flag
// is true. A changed declared income is decided afresh.
func (s *IncomeVerificationService) VerifyIncome(ctx context.Context, input models.VerifyIncomeInput) (*models.IncomeVerification, bool, error) {
	start := time.Now()

	if err := validateVerifyIncomeInput(input); err != nil {
		s.logger.LogVerificationFailed(ctx, input.ApplicationRef, err.Error())
		return nil, false, err
	}

	if err := s.checkStatement(input.StatementText); err != nil {
		s.logger.LogVerificationFailed(ctx, input.ApplicationRef, err.Error())
		return nil, false, err
	}

	// the column keeps two decimals, so lookups and stored rows must agree
	input.DeclaredMonthlyIncome = input.DeclaredMonthlyIncome.Round(2)
	digest := StatementDigest(input.StatementText)

	existing, err := s.repo.GetByApplicationAndDigest(ctx, input.ApplicationRef, digest, input.DeclaredMonthlyIncome)
	if err == nil {
		return s.reuse(ctx, input.Actor, existing), true, nil
	}
	if !errors.Is(err, repositories.ErrIncomeVerificationNotFound) {
		s.logger.LogVerificationFailed(ctx, input.ApplicationRef, err.Error())
		return nil, false, fmt.Errorf("failed to look up earlier verification: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	report := s.parse(ctx, input.StatementText)
	verification := s.buildVerification(input, digest, report)

	if err := s.repo.Create(ctx, verification); err != nil {
		// a concurrent request may have stored the same statement first
		if existing, lookupErr := s.repo.GetByApplicationAndDigest(ctx, input.ApplicationRef, digest, input.DeclaredMonthlyIncome); lookupErr == nil {
			return s.reuse(ctx, input.Actor, existing), true, nil
		}
		s.logger.LogVerificationFailed(ctx, input.ApplicationRef, err.Error())
		return nil, false, fmt.Errorf("failed to store income verification: %w", err)
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("income_verification", map[string]string{"status": verification.Status})
	s.metrics.RecordProcessingTime("income_verification", duration)
	s.logger.LogVerificationCompleted(ctx, verification, duration.Milliseconds())

	s.recordAudit(ctx, models.AuditActionIncomeVerified,
		s.auditService.LogIncomeVerified(ctx, input.Actor, verification, false))

	return verification, false, nil
}

func (s *IncomeVerificationService) GetVerification(ctx context.Context, id uuid.UUID) (*models.IncomeVerification, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidVerificationID
	}

	verification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrIncomeVerificationNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, fmt.Errorf("failed to get income verification: %w", err)
	}

	return verification, nil
}

// ListApplicationVerifications returns the verifications of one application, newest first
func (s *IncomeVerificationService) ListApplicationVerifications(ctx context.Context, applicationRef string, offset, limit int) ([]models.IncomeVerification, int64, error) {
	if strings.TrimSpace(applicationRef) == "" {
		return nil, 0, fmt.Errorf("%w: application reference is required", ErrInvalidVerificationInput)
	}

	offset, limit = normalizePagination(offset, limit)

	verifications, total, err := s.repo.ListByApplication(ctx, applicationRef, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list income verifications: %w", err)
	}

	return verifications, total, nil
}

func (s *IncomeVerificationService) checkStatement(text string) error {
	if s.maxBytes > 0 && int64(len(text)) > s.maxBytes {
		s.metrics.IncrementCounter("statement_rejected", map[string]string{"reason": "too_large"})
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrStatementTooLarge, len(text), s.maxBytes)
	}

	if strings.TrimSpace(text) == "" {
		s.metrics.IncrementCounter("statement_rejected", map[string]string{"reason": "empty"})
		return ErrEmptyStatement
	}

	return nil
}

func (s *IncomeVerificationService) parse(ctx context.Context, text string) *statement.IncomeReport {
	start := time.Now()
	report := s.parser.Parse(text)
	duration := time.Since(start)

	outcome := "no_income"
	if report.HasIncome() {
		outcome = "income"
	}

	s.metrics.RecordProcessingTime("statement_parse", duration)
	s.metrics.IncrementCounter("statement_parsed", map[string]string{
		"layout":  s.parser.Layout().Name,
		"outcome": outcome,
	})
	s.metrics.RecordGauge("statement_income_rows", float64(len(report.Incomes)), nil)
	for _, diagnostic := range report.Diagnostics {
		s.metrics.IncrementCounter("statement_row_skipped", map[string]string{"reason": string(diagnostic.Reason)})
	}

	s.logger.LogStatementParsed(ctx, report, duration.Milliseconds())

	return report
}

func (s *IncomeVerificationService) reuse(ctx context.Context, actor models.Actor, verification *models.IncomeVerification) *models.IncomeVerification {
	s.metrics.IncrementCounter("income_verification_reused", nil)
	s.logger.LogVerificationReused(ctx, verification)
	s.recordAudit(ctx, models.AuditActionVerificationReused,
		s.auditService.LogIncomeVerified(ctx, actor, verification, true))
	return verification
}

// recordAudit never fails the request; a lost audit entry is logged and counted
func (s *IncomeVerificationService) recordAudit(ctx context.Context, action string, err error) {
	if err == nil {
		return
	}
	s.logger.LogAuditWriteFailed(ctx, action, err.Error())
	s.metrics.IncrementCounter("audit_write_failed", map[string]string{"action": action})
}

func (s *IncomeVerificationService) buildVerification(input models.VerifyIncomeInput, digest string, report *statement.IncomeReport) *models.IncomeVerification {
	required := RequiredMonthlyIncome(s.verification, input.DeclaredMonthlyIncome)

	verification := &models.IncomeVerification{
		ApplicationRef:        input.ApplicationRef,
		ApplicantID:           input.ApplicantID,
		StatementDigest:       digest,
		Layout:                s.parser.Layout().Name,
		PeriodMonths:          report.PeriodMonths,
		TransactionCount:      report.TransactionCount,
		IncomeCount:           len(report.Incomes),
		SkippedCount:          len(report.Diagnostics),
		TotalIncome:           report.TotalIncome,
		AverageMonthlyIncome:  report.AverageMonthlyIncome,
		DeclaredMonthlyIncome: input.DeclaredMonthlyIncome,
		RequiredMonthlyIncome: required,
		Status:                DecideStatus(report, required),
		ComputedAt:            report.ComputedAt,
	}

	if input.Actor.UserID != uuid.Nil {
		verification.RequestedBy = input.Actor.UserID.String()
	}

	if report.Period != nil {
		periodStart := report.Period.StartDate
		periodEnd := report.Period.EndDate
		verification.PeriodStart = &periodStart
		verification.PeriodEnd = &periodEnd
	}

	return verification
}

// StatementDigest identifies a statement by the BLAKE2b-256 hash of its text
func StatementDigest(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// RequiredMonthlyIncome is the larger of the configured floor and the
// tolerated share of the declared income
func RequiredMonthlyIncome(cfg config.VerificationConfig, declared decimal.Decimal) decimal.Decimal {
	tolerated := declared.Mul(cfg.DeclaredIncomeTolerance).RoundBank(2)
	return decimal.Max(cfg.MinimumMonthlyIncome, tolerated)
}

// DecideStatus maps a parsed report onto a verification status
func DecideStatus(report *statement.IncomeReport, required decimal.Decimal) string {
	switch {
	case !report.HasIncome():
		return models.VerificationStatusNoIncome
	case report.AverageMonthlyIncome.GreaterThanOrEqual(required):
		return models.VerificationStatusConfirmed
	default:
		return models.VerificationStatusInsufficient
	}
}

func validateVerifyIncomeInput(input models.VerifyIncomeInput) error {
	if strings.TrimSpace(input.ApplicationRef) == "" {
		return fmt.Errorf("%w: application reference is required", ErrInvalidVerificationInput)
	}

	if strings.TrimSpace(input.ApplicantID) == "" {
		return fmt.Errorf("%w: applicant ID is required", ErrInvalidVerificationInput)
	}

	if input.DeclaredMonthlyIncome.IsNegative() {
		return fmt.Errorf("%w: declared monthly income cannot be negative", ErrInvalidVerificationInput)
	}

	return nil
}

func normalizePagination(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}

	if limit <= 0 {
		limit = DefaultPageLimit
	}

	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return offset, limit
}

package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"credit-backoffice/internal/config"
	"credit-backoffice/internal/models"
	"credit-backoffice/internal/repositories"
	"credit-backoffice/internal/repositories/repository_mocks"
	"credit-backoffice/internal/services/service_mocks"
	"credit-backoffice/internal/statement"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const salaryStatement = `Kaspi Gold
Statement for the period from 01.01.24 to 31.03.24
Available as of 01.01.24: + 50 000,00 ₸

05.01.24 + 50 000,00 ₸ Top-up From another bank card
10.02.24 + 150 000,00 ₸ Top-up Salary February
`

const spendingStatement = `Statement for the period from 01.01.24 to 31.03.24
12.01.24 - 4 500,00 ₸ Purchase Coffee shop
15.02.24 - 12 000,00 ₸ Purchase Groceries
`

// IncomeVerificationServiceTestSuite is the test suite for IncomeVerificationService
type IncomeVerificationServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockRepo    *repository_mocks.MockIncomeVerificationRepositoryInterface
	mockAudit   *service_mocks.MockAuditServiceInterface
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	cfg         *config.Config
	fixedNow    time.Time
	actor       models.Actor
	service     IncomeVerificationServiceInterface
}

func (s *IncomeVerificationServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockIncomeVerificationRepositoryInterface(s.ctrl)
	s.mockAudit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.cfg = &config.Config{
		Statement: config.StatementConfig{
			Layout:   statement.LayoutEnglish,
			MaxBytes: 4096,
		},
		Verification: config.VerificationConfig{
			MinimumMonthlyIncome:    decimal.NewFromInt(85000),
			DeclaredIncomeTolerance: decimal.RequireFromString("0.8"),
		},
	}

	s.fixedNow = time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	s.actor = models.Actor{
		UserID:    uuid.New(),
		IPAddress: gofakeit.IPv4Address(),
		UserAgent: gofakeit.UserAgent(),
	}

	s.service = s.newService(s.cfg)
}

func (s *IncomeVerificationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIncomeVerificationServiceSuite(t *testing.T) {
	suite.Run(t, new(IncomeVerificationServiceTestSuite))
}

func (s *IncomeVerificationServiceTestSuite) newService(cfg *config.Config) IncomeVerificationServiceInterface {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := statement.NewParser(
		statement.WithLogger(discard),
		statement.WithClock(func() time.Time { return s.fixedNow }),
	)
	return NewIncomeVerificationService(s.mockRepo, s.mockAudit, parser, cfg, s.mockMetrics, NewVerificationLogger(discard))
}

func (s *IncomeVerificationServiceTestSuite) input(text string, declared string) models.VerifyIncomeInput {
	return models.VerifyIncomeInput{
		ApplicationRef:        "APP-2024-0001",
		ApplicantID:           gofakeit.Numerify("############"),
		DeclaredMonthlyIncome: decimal.RequireFromString(declared),
		StatementText:         text,
		Actor:                 s.actor,
	}
}

func (s *IncomeVerificationServiceTestSuite) expectFreshStatement(input models.VerifyIncomeInput) {
	s.mockRepo.EXPECT().
		GetByApplicationAndDigest(gomock.Any(), input.ApplicationRef, StatementDigest(input.StatementText), decimalEq(input.DeclaredMonthlyIncome)).
		Return(nil, repositories.ErrIncomeVerificationNotFound)
}

type decimalMatcher struct {
	want decimal.Decimal
}

func decimalEq(want decimal.Decimal) gomock.Matcher {
	return decimalMatcher{want: want}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func (s *IncomeVerificationServiceTestSuite) TestParseStatement_Success() {
	report, err := s.service.ParseStatement(s.ctx, salaryStatement)

	s.Require().NoError(err)
	s.Require().Len(report.Incomes, 1)
	s.True(report.TotalIncome.Equal(decimal.NewFromInt(150000)))
	s.Equal(3, report.PeriodMonths)
	s.True(report.AverageMonthlyIncome.Equal(decimal.NewFromInt(50000)))
	s.Equal(s.fixedNow, report.ComputedAt)
}

func (s *IncomeVerificationServiceTestSuite) TestParseStatement_Empty() {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		report, err := s.service.ParseStatement(s.ctx, text)
		s.ErrorIs(err, ErrEmptyStatement)
		s.Nil(report)
	}
}

func (s *IncomeVerificationServiceTestSuite) TestParseStatement_TooLarge() {
	s.cfg.Statement.MaxBytes = 64
	service := s.newService(s.cfg)

	report, err := service.ParseStatement(s.ctx, salaryStatement)

	s.ErrorIs(err, ErrStatementTooLarge)
	s.Nil(report)
}

func (s *IncomeVerificationServiceTestSuite) TestParseStatement_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.ParseStatement(ctx, salaryStatement)

	s.ErrorIs(err, context.Canceled)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_Insufficient() {
	input := s.input(salaryStatement, "90000")
	s.expectFreshStatement(input)

	var stored *models.IncomeVerification
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.IncomeVerification) error {
			stored = v
			return nil
		})
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), s.actor, gomock.Any(), false).Return(nil)

	verification, reused, err := s.service.VerifyIncome(s.ctx, input)

	s.Require().NoError(err)
	s.False(reused)
	s.Same(stored, verification)
	s.Equal(models.VerificationStatusInsufficient, verification.Status)
	s.Equal(input.ApplicationRef, verification.ApplicationRef)
	s.Equal(input.ApplicantID, verification.ApplicantID)
	s.Equal(s.actor.UserID.String(), verification.RequestedBy)
	s.Equal(StatementDigest(salaryStatement), verification.StatementDigest)
	s.Equal(statement.LayoutEnglish, verification.Layout)
	s.Equal(3, verification.PeriodMonths)
	s.Equal(2, verification.TransactionCount)
	s.Equal(1, verification.IncomeCount)
	s.Equal(1, verification.SkippedCount)
	s.True(verification.TotalIncome.Equal(decimal.NewFromInt(150000)))
	s.True(verification.AverageMonthlyIncome.Equal(decimal.NewFromInt(50000)))
	s.True(verification.RequiredMonthlyIncome.Equal(decimal.NewFromInt(85000)))
	s.Equal(s.fixedNow, verification.ComputedAt)
	s.Require().NotNil(verification.PeriodStart)
	s.Require().NotNil(verification.PeriodEnd)
	s.True(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(*verification.PeriodStart))
	s.True(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC).Equal(*verification.PeriodEnd))
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_Confirmed() {
	s.cfg.Verification.MinimumMonthlyIncome = decimal.NewFromInt(40000)
	service := s.newService(s.cfg)

	input := s.input(salaryStatement, "55000")
	s.expectFreshStatement(input)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), s.actor, gomock.Any(), false).Return(nil)

	verification, reused, err := service.VerifyIncome(s.ctx, input)

	s.Require().NoError(err)
	s.False(reused)
	s.Equal(models.VerificationStatusConfirmed, verification.Status)
	s.True(verification.RequiredMonthlyIncome.Equal(decimal.NewFromInt(44000)))
	s.True(verification.IsConfirmed())
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_NoIncome() {
	input := s.input(spendingStatement, "0")
	s.expectFreshStatement(input)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), s.actor, gomock.Any(), false).Return(nil)

	verification, _, err := s.service.VerifyIncome(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(models.VerificationStatusNoIncome, verification.Status)
	s.Zero(verification.IncomeCount)
	s.True(verification.TotalIncome.IsZero())
	s.Equal(2, verification.SkippedCount)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_ReusesEarlierDecision() {
	input := s.input(salaryStatement, "90000")
	existing := &models.IncomeVerification{
		ID:              uuid.New(),
		ApplicationRef:  input.ApplicationRef,
		StatementDigest: StatementDigest(salaryStatement),
		Status:          models.VerificationStatusInsufficient,
	}

	s.mockRepo.EXPECT().
		GetByApplicationAndDigest(gomock.Any(), input.ApplicationRef, existing.StatementDigest, decimalEq(input.DeclaredMonthlyIncome)).
		Return(existing, nil)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), s.actor, existing, true).Return(nil)

	verification, reused, err := s.service.VerifyIncome(s.ctx, input)

	s.Require().NoError(err)
	s.True(reused)
	s.Same(existing, verification)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_ChangedDeclaredIncomeDecidedAgain() {
	s.cfg.Verification.MinimumMonthlyIncome = decimal.NewFromInt(40000)
	service := s.newService(s.cfg)

	first := s.input(salaryStatement, "200000")
	second := first
	second.DeclaredMonthlyIncome = decimal.NewFromInt(50000)

	var stored []*models.IncomeVerification
	s.expectFreshStatement(first)
	s.expectFreshStatement(second)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.IncomeVerification) error {
			stored = append(stored, v)
			return nil
		}).Times(2)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), s.actor, gomock.Any(), false).Return(nil).Times(2)

	verification, reused, err := service.VerifyIncome(s.ctx, first)
	s.Require().NoError(err)
	s.False(reused)
	s.Equal(models.VerificationStatusInsufficient, verification.Status)
	s.True(verification.RequiredMonthlyIncome.Equal(decimal.NewFromInt(160000)))

	verification, reused, err = service.VerifyIncome(s.ctx, second)
	s.Require().NoError(err)
	s.False(reused)
	s.True(verification.DeclaredMonthlyIncome.Equal(decimal.NewFromInt(50000)))
	s.True(verification.RequiredMonthlyIncome.Equal(decimal.NewFromInt(40000)))
	s.Equal(models.VerificationStatusConfirmed, verification.Status)

	s.Require().Len(stored, 2)
	s.Equal(stored[0].StatementDigest, stored[1].StatementDigest)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_DeclaredIncomeRoundedBeforeLookup() {
	input := s.input(salaryStatement, "90000.004")
	s.mockRepo.EXPECT().
		GetByApplicationAndDigest(gomock.Any(), input.ApplicationRef, StatementDigest(salaryStatement), decimalEq(decimal.NewFromInt(90000))).
		Return(nil, repositories.ErrIncomeVerificationNotFound)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), s.actor, gomock.Any(), false).Return(nil)

	verification, _, err := s.service.VerifyIncome(s.ctx, input)

	s.Require().NoError(err)
	s.Equal("90000.00", verification.DeclaredMonthlyIncome.StringFixed(2))
	s.True(verification.DeclaredMonthlyIncome.Equal(decimal.NewFromInt(90000)))
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_LookupError() {
	input := s.input(salaryStatement, "90000")
	s.mockRepo.EXPECT().GetByApplicationAndDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	verification, reused, err := s.service.VerifyIncome(s.ctx, input)

	s.Error(err)
	s.Contains(err.Error(), "connection reset")
	s.False(reused)
	s.Nil(verification)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_ConcurrentDuplicateIsReused() {
	input := s.input(salaryStatement, "90000")
	winner := &models.IncomeVerification{ID: uuid.New(), ApplicationRef: input.ApplicationRef}

	gomock.InOrder(
		s.mockRepo.EXPECT().GetByApplicationAndDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, repositories.ErrIncomeVerificationNotFound),
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(errors.New("duplicate key value violates unique constraint")),
		s.mockRepo.EXPECT().GetByApplicationAndDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(winner, nil),
	)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), s.actor, winner, true).Return(nil)

	verification, reused, err := s.service.VerifyIncome(s.ctx, input)

	s.Require().NoError(err)
	s.True(reused)
	s.Same(winner, verification)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_CreateError() {
	input := s.input(salaryStatement, "90000")
	s.mockRepo.EXPECT().GetByApplicationAndDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrIncomeVerificationNotFound).Times(2)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	verification, reused, err := s.service.VerifyIncome(s.ctx, input)

	s.Error(err)
	s.Contains(err.Error(), "failed to store income verification")
	s.False(reused)
	s.Nil(verification)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_AuditFailureDoesNotFailRequest() {
	input := s.input(salaryStatement, "90000")
	s.expectFreshStatement(input)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(errors.New("audit table locked"))

	verification, _, err := s.service.VerifyIncome(s.ctx, input)

	s.NoError(err)
	s.NotNil(verification)
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_InvalidInput() {
	testCases := []struct {
		name   string
		mutate func(*models.VerifyIncomeInput)
		want   error
	}{
		{"missing application ref", func(in *models.VerifyIncomeInput) { in.ApplicationRef = " " }, ErrInvalidVerificationInput},
		{"missing applicant", func(in *models.VerifyIncomeInput) { in.ApplicantID = "" }, ErrInvalidVerificationInput},
		{"negative declared income", func(in *models.VerifyIncomeInput) { in.DeclaredMonthlyIncome = decimal.NewFromInt(-1) }, ErrInvalidVerificationInput},
		{"empty statement", func(in *models.VerifyIncomeInput) { in.StatementText = "\n" }, ErrEmptyStatement},
		{"oversized statement", func(in *models.VerifyIncomeInput) { in.StatementText = strings.Repeat("x", 5000) }, ErrStatementTooLarge},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := s.input(salaryStatement, "90000")
			tc.mutate(&input)

			verification, reused, err := s.service.VerifyIncome(s.ctx, input)

			s.ErrorIs(err, tc.want)
			s.False(reused)
			s.Nil(verification)
		})
	}
}

func (s *IncomeVerificationServiceTestSuite) TestVerifyIncome_AnonymousActor() {
	input := s.input(salaryStatement, "90000")
	input.Actor = models.Actor{}
	s.expectFreshStatement(input)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().LogIncomeVerified(gomock.Any(), models.Actor{}, gomock.Any(), false).Return(nil)

	verification, _, err := s.service.VerifyIncome(s.ctx, input)

	s.Require().NoError(err)
	s.Empty(verification.RequestedBy)
}

func (s *IncomeVerificationServiceTestSuite) TestGetVerification() {
	id := uuid.New()
	expected := &models.IncomeVerification{ID: id}
	s.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(expected, nil)

	verification, err := s.service.GetVerification(s.ctx, id)

	s.NoError(err)
	s.Same(expected, verification)
}

func (s *IncomeVerificationServiceTestSuite) TestGetVerification_NilID() {
	_, err := s.service.GetVerification(s.ctx, uuid.Nil)

	s.ErrorIs(err, ErrInvalidVerificationID)
}

func (s *IncomeVerificationServiceTestSuite) TestGetVerification_NotFound() {
	s.mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrIncomeVerificationNotFound)

	_, err := s.service.GetVerification(s.ctx, uuid.New())

	s.ErrorIs(err, ErrVerificationNotFound)
}

func (s *IncomeVerificationServiceTestSuite) TestGetVerification_RepositoryError() {
	s.mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := s.service.GetVerification(s.ctx, uuid.New())

	s.Error(err)
	s.NotErrorIs(err, ErrVerificationNotFound)
}

func (s *IncomeVerificationServiceTestSuite) TestListApplicationVerifications_Pagination() {
	testCases := []struct {
		name                  string
		offset, limit         int
		wantOffset, wantLimit int
	}{
		{"defaults", 0, 0, 0, DefaultPageLimit},
		{"negative offset", -5, 10, 0, 10},
		{"limit capped", 40, 500, 40, MaxPageLimit},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockRepo.EXPECT().
				ListByApplication(gomock.Any(), "APP-2024-0001", tc.wantOffset, tc.wantLimit).
				Return([]models.IncomeVerification{{ApplicationRef: "APP-2024-0001"}}, int64(1), nil)

			verifications, total, err := s.service.ListApplicationVerifications(s.ctx, "APP-2024-0001", tc.offset, tc.limit)

			s.NoError(err)
			s.Equal(int64(1), total)
			s.Len(verifications, 1)
		})
	}
}

func (s *IncomeVerificationServiceTestSuite) TestListApplicationVerifications_MissingRef() {
	_, _, err := s.service.ListApplicationVerifications(s.ctx, "", 0, 10)

	s.ErrorIs(err, ErrInvalidVerificationInput)
}

func (s *IncomeVerificationServiceTestSuite) TestRequiredMonthlyIncome() {
	cfg := config.VerificationConfig{
		MinimumMonthlyIncome:    decimal.NewFromInt(85000),
		DeclaredIncomeTolerance: decimal.RequireFromString("0.8"),
	}

	testCases := []struct {
		declared string
		want     string
	}{
		{"0", "85000"},
		{"100000", "85000"},
		{"110000", "88000"},
		{"123456.78", "98765.42"},
	}

	for _, tc := range testCases {
		got := RequiredMonthlyIncome(cfg, decimal.RequireFromString(tc.declared))
		s.True(decimal.RequireFromString(tc.want).Equal(got), "declared %s: expected %s, got %s", tc.declared, tc.want, got)
	}
}

func (s *IncomeVerificationServiceTestSuite) TestDecideStatus() {
	required := decimal.NewFromInt(50000)
	income := []statement.RawTransaction{{Sign: statement.SignCredit, Amount: decimal.NewFromInt(1)}}

	s.Equal(models.VerificationStatusNoIncome, DecideStatus(&statement.IncomeReport{}, required))
	s.Equal(models.VerificationStatusConfirmed, DecideStatus(&statement.IncomeReport{
		Incomes:              income,
		AverageMonthlyIncome: decimal.NewFromInt(50000),
	}, required))
	s.Equal(models.VerificationStatusInsufficient, DecideStatus(&statement.IncomeReport{
		Incomes:              income,
		AverageMonthlyIncome: decimal.RequireFromString("49999.99"),
	}, required))
}

func (s *IncomeVerificationServiceTestSuite) TestStatementDigest() {
	digest := StatementDigest(salaryStatement)

	s.Len(digest, models.StatementDigestLength)
	s.Equal(digest, StatementDigest(salaryStatement))
	s.NotEqual(digest, StatementDigest(salaryStatement+" "))
}

func (s *IncomeVerificationServiceTestSuite) TestNewStatementParser() {
	parser, err := NewStatementParser(config.StatementConfig{Layout: "kaspi"}, nil)
	s.Require().NoError(err)
	s.Equal(statement.LayoutKaspi, parser.Layout().Name)

	_, err = NewStatementParser(config.StatementConfig{Layout: "swift"}, nil)
	s.ErrorIs(err, statement.ErrUnknownLayout)
}

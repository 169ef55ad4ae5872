package services

import (
	"strings"
	"testing"
	"time"

	"credit-backoffice/internal/models"
	"credit-backoffice/internal/statement"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SampleStatementGeneratorTestSuite struct {
	suite.Suite
	generator *sampleStatementGenerator
	start     time.Time
	end       time.Time
}

func TestSampleStatementGeneratorSuite(t *testing.T) {
	suite.Run(t, new(SampleStatementGeneratorTestSuite))
}

func (s *SampleStatementGeneratorTestSuite) SetupTest() {
	s.generator = NewSampleStatementGenerator().(*sampleStatementGenerator)
	s.generator.now = func() time.Time { return time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC) }
	s.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (s *SampleStatementGeneratorTestSuite) request(layout string, seed int64) models.SampleStatementRequest {
	return models.SampleStatementRequest{
		Layout:        layout,
		PeriodStart:   s.start,
		PeriodEnd:     s.end,
		MonthlySalary: decimal.NewFromInt(350000),
		Seed:          seed,
	}
}

func (s *SampleStatementGeneratorTestSuite) TestGenerate_ParserFindsExpectedIncome() {
	for _, layout := range []statement.Layout{statement.EnglishLayout, statement.KaspiLayout} {
		for seed := int64(1); seed <= 20; seed++ {
			sample, err := s.generator.Generate(s.request(layout.Name, seed))
			s.Require().NoError(err)

			report := statement.NewParser(statement.WithLayout(layout)).Parse(sample.Text)

			s.Equal(sample.IncomeCount, len(report.Incomes), "layout %s seed %d", layout.Name, seed)
			s.True(sample.ExpectedIncome.Equal(report.TotalIncome),
				"layout %s seed %d: expected %s, parsed %s", layout.Name, seed, sample.ExpectedIncome, report.TotalIncome)
			s.Equal(sample.RowCount, report.TransactionCount)
			s.Equal(3, report.PeriodMonths)
			s.Require().NotNil(report.InitialBalance)
		}
	}
}

func (s *SampleStatementGeneratorTestSuite) TestGenerate_SalaryEveryMonth() {
	sample, err := s.generator.Generate(s.request(statement.LayoutEnglish, 7))
	s.Require().NoError(err)

	s.GreaterOrEqual(sample.IncomeCount, 3)
	s.True(sample.ExpectedIncome.GreaterThanOrEqual(decimal.NewFromInt(3 * 350000)))
	s.Equal(3, strings.Count(sample.Text, "Top-up Salary for"))
	s.Contains(sample.Text, "Statement for the period from 01.01.24 to 31.03.24")
	s.Contains(sample.Text, "350 000,00 ₸")
}

func (s *SampleStatementGeneratorTestSuite) TestGenerate_SameSeedSameText() {
	first, err := s.generator.Generate(s.request(statement.LayoutKaspi, 42))
	s.Require().NoError(err)
	second, err := s.generator.Generate(s.request(statement.LayoutKaspi, 42))
	s.Require().NoError(err)

	s.Equal(first.Text, second.Text)
	s.Contains(first.Text, "Выписка за период с 01.01.24 по 31.03.24")
}

func (s *SampleStatementGeneratorTestSuite) TestGenerate_OpeningBalanceEqualToSalary() {
	req := s.request(statement.LayoutEnglish, 3)
	req.OpeningBalance = req.MonthlySalary

	sample, err := s.generator.Generate(req)
	s.Require().NoError(err)

	report := statement.NewParser().Parse(sample.Text)
	s.Equal(sample.IncomeCount, len(report.Incomes))
	s.True(sample.ExpectedIncome.Equal(report.TotalIncome))
}

func (s *SampleStatementGeneratorTestSuite) TestGenerate_DefaultPeriod() {
	sample, err := s.generator.Generate(models.SampleStatementRequest{Seed: 1})
	s.Require().NoError(err)

	s.Equal(statement.LayoutEnglish, sample.Layout)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), sample.PeriodStart)
	s.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), sample.PeriodEnd)
	s.True(sample.ExpectedIncome.IsPositive())
}

func (s *SampleStatementGeneratorTestSuite) TestGenerate_InvalidRequests() {
	tests := []struct {
		name   string
		mutate func(*models.SampleStatementRequest)
	}{
		{"unknown layout", func(r *models.SampleStatementRequest) { r.Layout = "swift" }},
		{"end before start", func(r *models.SampleStatementRequest) { r.PeriodStart, r.PeriodEnd = r.PeriodEnd, r.PeriodStart }},
		{"missing end", func(r *models.SampleStatementRequest) { r.PeriodEnd = time.Time{} }},
		{"too long", func(r *models.SampleStatementRequest) { r.PeriodStart = r.PeriodEnd.AddDate(-3, 0, 0) }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.request(statement.LayoutEnglish, 1)
			tt.mutate(&req)

			sample, err := s.generator.Generate(req)

			s.ErrorIs(err, ErrInvalidSampleRequest)
			s.Nil(sample)
		})
	}
}

func (s *SampleStatementGeneratorTestSuite) TestFormatStatementAmount() {
	tests := map[string]string{
		"0":          "0,00",
		"7.5":        "7,50",
		"950":        "950,00",
		"50000":      "50 000,00",
		"1234567.89": "1 234 567,89",
		"-4500":      "4 500,00",
	}

	for input, expected := range tests {
		amount := decimal.RequireFromString(input)
		s.Equal(expected, formatStatementAmount(amount), input)

		parsed, ok := statement.ParseAmount(expected)
		s.True(ok, expected)
		s.True(parsed.Equal(amount.Abs()), expected)
	}
}

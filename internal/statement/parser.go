// Package statement extracts deposit transactions from bank statement text and
// computes the applicant's average monthly income.
//
// Parsing is best-effort: malformed or empty input produces a zero report,
// never an error. Dropped and skipped rows are listed in the report
// diagnostics.
package statement

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// AveragePlaces is the precision of the monthly average; the quotient is
// rounded half-to-even.
const AveragePlaces = 2

// Parser turns statement text into an IncomeReport. A Parser has no mutable
// state and may be shared between goroutines.
type Parser struct {
	layout     Layout
	classifier *Classifier
	logger     *slog.Logger
	now        func() time.Time
	extra      []string
}

// Option configures a Parser
type Option func(*Parser)

// WithLayout selects the statement vocabulary
func WithLayout(layout Layout) Option {
	return func(p *Parser) {
		p.layout = layout
	}
}

// WithLogger sets the logger used for dropped-row warnings
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock overrides the ComputedAt time source
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithExcludedSources adds internal-transfer phrases to the layout's list
func WithExcludedSources(phrases ...string) Option {
	return func(p *Parser) {
		p.extra = append(p.extra, phrases...)
	}
}

// NewParser creates a parser using EnglishLayout unless configured otherwise
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		layout: EnglishLayout,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.classifier = NewClassifier(p.layout, p.extra...)
	return p
}

// Layout returns the vocabulary the parser was built with
func (p *Parser) Layout() Layout {
	return p.layout
}

// Parse runs period detection, row extraction, initial-balance detection,
// classification and aggregation over the text.
func (p *Parser) Parse(text string) *IncomeReport {
	report := &IncomeReport{
		Incomes:              []RawTransaction{},
		TotalIncome:          decimal.Zero,
		PeriodMonths:         1,
		AverageMonthlyIncome: decimal.Zero,
		Diagnostics:          []Diagnostic{},
		ComputedAt:           p.now(),
	}

	if period := DetectPeriod(text, p.layout); period != nil {
		report.Period = period
		report.PeriodMonths = period.Months
	}

	transactions, dropped := Tokenize(text, p.logger)
	report.TransactionCount = len(transactions)
	report.Diagnostics = append(report.Diagnostics, dropped...)

	report.InitialBalance = DetectInitialBalance(text, p.layout)

	for _, tx := range transactions {
		include, reason := p.classifier.Classify(tx, report.InitialBalance)
		if !include {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Line:   tx.Line,
				Reason: reason,
				Detail: tx.OperationLabel,
			})
			continue
		}
		report.Incomes = append(report.Incomes, tx)
		report.TotalIncome = report.TotalIncome.Add(tx.Amount)
	}

	report.AverageMonthlyIncome = AverageMonthly(report.TotalIncome, report.PeriodMonths)

	p.logger.Debug("statement parsed",
		"layout", p.layout.Name,
		"transactions", report.TransactionCount,
		"incomes", len(report.Incomes),
		"period_months", report.PeriodMonths,
		"total_income", report.TotalIncome.String())

	return report
}

// AverageMonthly divides total by months, treating months < 1 as one month
func AverageMonthly(total decimal.Decimal, months int) decimal.Decimal {
	if months < 1 {
		months = 1
	}
	return total.DivRound(decimal.NewFromInt(int64(months)), int32(decimal.DivisionPrecision)).RoundBank(AveragePlaces)
}

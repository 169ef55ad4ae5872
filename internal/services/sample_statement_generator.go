package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"credit-backoffice/internal/models"
	"credit-backoffice/internal/statement"

	"github.com/shopspring/decimal"
)

const (
	shortDateLayout      = "02.01.06"
	currencySign         = "₸"
	defaultSampleMonths  = 3
	maxSampleMonths      = 24
	maxPurchasesPerDay   = 3
	sideIncomeChance     = 0.3
	refundChance         = 0.04
	ownTransferChance    = 0.03
	continuationChance   = 0.2
	defaultOpeningTiyn   = 4_250_000
	openingBalanceSpread = 20_000_000
)

var ErrInvalidSampleRequest = errors.New("invalid sample statement request")

type merchant struct {
	name     string
	category string
}

// merchant amounts are in tiyn
var categoryAmountRanges = map[string][2]int64{
	"groceries":      {150_000, 4_000_000},
	"dining":         {120_000, 1_500_000},
	"transportation": {60_000, 600_000},
	"shopping":       {500_000, 15_000_000},
	"telecom":        {300_000, 1_200_000},
	"travel":         {3_000_000, 25_000_000},
	"utilities":      {500_000, 3_500_000},
}

var defaultSalaries = []int64{250_000, 350_000, 450_000, 600_000}

// sampleVocabulary is the statement wording that sits outside the ledger rows
type sampleVocabulary struct {
	title         string
	periodHeader  string
	balanceLine   string
	transferLabel string
	salaryDetail  func(month time.Month) string
	transferFrom  string
	cities        []string
}

var russianMonths = [...]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

var sampleVocabularies = map[string]sampleVocabulary{
	statement.LayoutEnglish: {
		title:         "Kaspi Gold card statement",
		periodHeader:  "Statement for the period from %s to %s",
		balanceLine:   "Available as of %s: + %s " + currencySign,
		transferLabel: "Transfers",
		salaryDetail: func(month time.Month) string {
			return "Salary for " + month.String()
		},
		transferFrom: "Transfer from %s",
		cities:       []string{"Almaty", "Astana", "Shymkent", "Karaganda"},
	},
	statement.LayoutKaspi: {
		title:         "Выписка по Kaspi Gold",
		periodHeader:  "Выписка за период с %s по %s",
		balanceLine:   "Доступно на %s: + %s " + currencySign,
		transferLabel: "Переводы",
		salaryDetail: func(month time.Month) string {
			return "Зарплата за " + russianMonths[month-1]
		},
		transferFrom: "Перевод от %s",
		cities:       []string{"Алматы", "Астана", "Шымкент", "Караганда"},
	},
}

var transferSenders = []string{"Aigerim K.", "Daniyar S.", "Madina T.", "Yerlan B.", "Saule N."}

type sampleStatementGenerator struct {
	merchantPool []merchant
	now          func() time.Time
}

// NewSampleStatementGenerator creates a generator of synthetic statements
func NewSampleStatementGenerator() SampleStatementGeneratorInterface {
	return &sampleStatementGenerator{
		merchantPool: initializeMerchantPool(),
		now:          time.Now,
	}
}

func initializeMerchantPool() []merchant {
	return []merchant{
		{"Magnum Cash&Carry", "groceries"},
		{"Small", "groceries"},
		{"Galmart", "groceries"},
		{"Anvar", "groceries"},
		{"Wolt", "dining"},
		{"Glovo", "dining"},
		{"Coffee Boom", "dining"},
		{"Del Papa", "dining"},
		{"Yandex Go", "transportation"},
		{"Onay", "transportation"},
		{"Helios", "transportation"},
		{"Kaspi Magazin", "shopping"},
		{"Sulpak", "shopping"},
		{"Technodom", "shopping"},
		{"Mechta", "shopping"},
		{"Beeline", "telecom"},
		{"Kcell", "telecom"},
		{"Air Astana", "travel"},
		{"FlyArystan", "travel"},
		{"Alseco", "utilities"},
	}
}

// Generate renders a statement in the requested layout. Salary arrives once a
// month; refunds, own-account top-ups and balance lines are mixed in so every
// classifier rule has something to reject.
func (g *sampleStatementGenerator) Generate(req models.SampleStatementRequest) (*models.SampleStatement, error) {
	layout, err := statement.LayoutByName(req.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSampleRequest, err)
	}
	vocabulary := sampleVocabularies[layout.Name]

	start, end, err := g.period(req)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	opening := req.OpeningBalance
	if !opening.IsPositive() {
		opening = decimal.New(defaultOpeningTiyn+rng.Int63n(openingBalanceSpread), -2)
	}

	salary := req.MonthlySalary
	if !salary.IsPositive() {
		salary = decimal.NewFromInt(defaultSalaries[rng.Intn(len(defaultSalaries))])
	}
	salaryDay := 1 + rng.Intn(28)

	b := &sampleBuilder{layout: layout, opening: opening}
	b.line(vocabulary.title)
	b.line(fmt.Sprintf(vocabulary.periodHeader, start.Format(shortDateLayout), end.Format(shortDateLayout)))
	b.line(fmt.Sprintf(vocabulary.balanceLine, start.Format(shortDateLayout), formatStatementAmount(opening)))
	b.line("")

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Day() == salaryDay {
			b.income(day, layout.TopUpLabel, salary, vocabulary.salaryDetail(day.Month()))
		}

		if day.Day() == salaryDay && rng.Float64() < sideIncomeChance {
			amount := g.amount(rng, "dining").Mul(decimal.NewFromInt(10))
			sender := transferSenders[rng.Intn(len(transferSenders))]
			b.income(day, vocabulary.transferLabel, amount, fmt.Sprintf(vocabulary.transferFrom, sender))
		}

		for i := rng.Intn(maxPurchasesPerDay); i > 0; i-- {
			m := g.merchantPool[rng.Intn(len(g.merchantPool))]
			sign := statement.SignDebit
			if rng.Float64() < refundChance {
				sign = statement.SignCredit
			}
			b.row(day, sign, g.amount(rng, m.category), layout.PurchaseLabel, m.name)
			if rng.Float64() < continuationChance {
				b.line(vocabulary.cities[rng.Intn(len(vocabulary.cities))])
			}
		}

		if len(layout.ExcludedSources) > 0 && rng.Float64() < ownTransferChance {
			source := layout.ExcludedSources[rng.Intn(len(layout.ExcludedSources))]
			b.row(day, statement.SignCredit, g.amount(rng, "shopping"), layout.TopUpLabel, source)
		}
	}

	return &models.SampleStatement{
		Text:           b.String(),
		Layout:         layout.Name,
		PeriodStart:    start,
		PeriodEnd:      end,
		RowCount:       b.rows,
		IncomeCount:    b.incomes,
		ExpectedIncome: b.total,
	}, nil
}

// period defaults to the last full months before now
func (g *sampleStatementGenerator) period(req models.SampleStatementRequest) (time.Time, time.Time, error) {
	start, end := truncateDay(req.PeriodStart), truncateDay(req.PeriodEnd)

	if req.PeriodStart.IsZero() && req.PeriodEnd.IsZero() {
		now := g.now().UTC()
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return firstOfMonth.AddDate(0, -defaultSampleMonths, 0), firstOfMonth.AddDate(0, 0, -1), nil
	}

	if req.PeriodStart.IsZero() || req.PeriodEnd.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period needs both a start and an end", ErrInvalidSampleRequest)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period ends before it starts", ErrInvalidSampleRequest)
	}

	if statement.MonthsBetween(start, end) > maxSampleMonths {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period is longer than %d months", ErrInvalidSampleRequest, maxSampleMonths)
	}

	return start, end, nil
}

func (g *sampleStatementGenerator) amount(rng *rand.Rand, category string) decimal.Decimal {
	bounds, ok := categoryAmountRanges[category]
	if !ok {
		bounds = [2]int64{100_000, 1_000_000}
	}
	return decimal.New(bounds[0]+rng.Int63n(bounds[1]-bounds[0]), -2)
}

type sampleBuilder struct {
	layout  statement.Layout
	opening decimal.Decimal
	sb      strings.Builder
	rows    int
	incomes int
	total   decimal.Decimal
}

func (b *sampleBuilder) line(text string) {
	b.sb.WriteString(text)
	b.sb.WriteByte('\n')
}

func (b *sampleBuilder) row(day time.Time, sign statement.Sign, amount decimal.Decimal, label, details string) {
	b.rows++
	b.line(fmt.Sprintf("%s %s %s %s %s %s",
		day.Format(shortDateLayout), sign, formatStatementAmount(amount), currencySign, label, details))
}

// income writes a credit the parser must count. An amount equal to the opening
// balance would be read as the balance line, so it is nudged by one tiyn.
func (b *sampleBuilder) income(day time.Time, label string, amount decimal.Decimal, details string) {
	if amount.Equal(b.opening) {
		amount = amount.Add(decimal.New(1, -2))
	}
	b.row(day, statement.SignCredit, amount, label, details)
	b.incomes++
	b.total = b.total.Add(amount)
}

func (b *sampleBuilder) String() string {
	return b.sb.String()
}

// formatStatementAmount prints 1234567.5 as "1 234 567,50"
func formatStatementAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	return grouped.String() + "," + fraction
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

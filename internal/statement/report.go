package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sign is the direction of funds printed next to a statement amount
type Sign string

const (
	SignCredit Sign = "+"
	SignDebit  Sign = "-"
)

// SkipReason explains why a statement row did not make it into the income list
type SkipReason string

const (
	ReasonMalformedRow          SkipReason = "malformed_row"
	ReasonUnparseableAmount     SkipReason = "unparseable_amount"
	ReasonInvalidDate           SkipReason = "invalid_date"
	ReasonZeroAmount            SkipReason = "zero_amount"
	ReasonMatchesInitialBalance SkipReason = "matches_initial_balance"
	ReasonDebit                 SkipReason = "debit"
	ReasonOwnAccountTransfer    SkipReason = "own_account_transfer"
	ReasonBalanceLine           SkipReason = "balance_line"
	ReasonPurchaseRefund        SkipReason = "purchase_refund"
	ReasonNoIncomeKeyword       SkipReason = "no_income_keyword"
)

// RawTransaction is one ledger row as extracted from the statement text
type RawTransaction struct {
	Date           time.Time       `json:"date"`
	Sign           Sign            `json:"sign"`
	Amount         decimal.Decimal `json:"amount"`
	OperationLabel string          `json:"operation_label"`
	Details        string          `json:"details"`
	Line           int             `json:"line"`
}

// IsCredit reports whether funds moved into the account
func (t RawTransaction) IsCredit() bool {
	return t.Sign == SignCredit
}

// StatementPeriod is the reporting window printed in the statement header
type StatementPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Months    int       `json:"months"`
}

// InitialBalance is the opening "available as of" figure
type InitialBalance struct {
	AsOf   time.Time       `json:"as_of"`
	Amount decimal.Decimal `json:"amount"`
}

// Diagnostic records a row that was dropped or skipped during parsing.
// Line is the 1-based line of the record header in the source text.
type Diagnostic struct {
	Line   int        `json:"line"`
	Reason SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// IncomeReport is the transient result of a single Parse call
type IncomeReport struct {
	Incomes              []RawTransaction `json:"incomes"`
	TotalIncome          decimal.Decimal  `json:"total_income"`
	PeriodMonths         int              `json:"period_months"`
	AverageMonthlyIncome decimal.Decimal  `json:"average_monthly_income"`
	Period               *StatementPeriod `json:"period,omitempty"`
	InitialBalance       *InitialBalance  `json:"initial_balance,omitempty"`
	TransactionCount     int              `json:"transaction_count"`
	Diagnostics          []Diagnostic     `json:"diagnostics"`
	ComputedAt           time.Time        `json:"computed_at"`
}

// SkipCounts groups the report diagnostics by reason
func (r *IncomeReport) SkipCounts() map[SkipReason]int {
	counts := make(map[SkipReason]int, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		counts[d.Reason]++
	}
	return counts
}

// HasIncome reports whether at least one row was classified as income
func (r *IncomeReport) HasIncome() bool {
	return len(r.Incomes) > 0
}

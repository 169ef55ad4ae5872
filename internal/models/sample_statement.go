package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SampleStatementRequest describes a synthetic statement for local testing
type SampleStatementRequest struct {
	Layout         string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	MonthlySalary  decimal.Decimal
	OpeningBalance decimal.Decimal
	// Seed makes the output reproducible; zero picks a random seed
	Seed int64
}

// SampleStatement is generated statement text together with the income a
// correct parse of it must find
type SampleStatement struct {
	Text           string
	Layout         string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	RowCount       int
	IncomeCount    int
	ExpectedIncome decimal.Decimal
}

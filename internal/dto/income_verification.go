package dto

import (
	"time"

	"credit-backoffice/internal/models"
	"credit-backoffice/internal/statement"
)

const dateLayout = "2006-01-02"

// Statement Request DTOs

// ParseStatementRequest carries already extracted statement text
type ParseStatementRequest struct {
	StatementText string `json:"statement_text"`
}

// VerifyIncomeRequest represents the request payload for verifying declared income
type VerifyIncomeRequest struct {
	ApplicantID           string `json:"applicant_id" validate:"required,max=64"`
	DeclaredMonthlyIncome string `json:"declared_monthly_income" validate:"required,decimal_amount"`
	StatementText         string `json:"statement_text"`
}

// Statement Response DTOs

// TransactionResponse is one ledger row; amounts are decimal strings
type TransactionResponse struct {
	Date           string `json:"date"`
	Sign           string `json:"sign"`
	Amount         string `json:"amount"`
	OperationLabel string `json:"operation_label"`
	Details        string `json:"details"`
	Line           int    `json:"line"`
}

type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Months    int    `json:"months"`
}

type InitialBalanceResponse struct {
	AsOf   string `json:"as_of"`
	Amount string `json:"amount"`
}

// IncomeReportResponse is the result of parsing one statement
type IncomeReportResponse struct {
	Incomes              []TransactionResponse   `json:"incomes"`
	TotalIncome          string                  `json:"total_income"`
	PeriodMonths         int                     `json:"period_months"`
	AverageMonthlyIncome string                  `json:"average_monthly_income"`
	Period               *PeriodResponse         `json:"period,omitempty"`
	InitialBalance       *InitialBalanceResponse `json:"initial_balance,omitempty"`
	TransactionCount     int                     `json:"transaction_count"`
	SkipCounts           map[string]int          `json:"skip_counts"`
	Diagnostics          []statement.Diagnostic  `json:"diagnostics"`
	ComputedAt           time.Time               `json:"computed_at"`
}

// NewIncomeReportResponse converts a parser report to its wire form
func NewIncomeReportResponse(report *statement.IncomeReport) IncomeReportResponse {
	response := IncomeReportResponse{
		Incomes:              make([]TransactionResponse, 0, len(report.Incomes)),
		TotalIncome:          report.TotalIncome.StringFixed(2),
		PeriodMonths:         report.PeriodMonths,
		AverageMonthlyIncome: report.AverageMonthlyIncome.StringFixed(2),
		TransactionCount:     report.TransactionCount,
		SkipCounts:           make(map[string]int),
		Diagnostics:          report.Diagnostics,
		ComputedAt:           report.ComputedAt,
	}

	if response.Diagnostics == nil {
		response.Diagnostics = []statement.Diagnostic{}
	}

	for _, tx := range report.Incomes {
		response.Incomes = append(response.Incomes, TransactionResponse{
			Date:           tx.Date.Format(dateLayout),
			Sign:           string(tx.Sign),
			Amount:         tx.Amount.StringFixed(2),
			OperationLabel: tx.OperationLabel,
			Details:        tx.Details,
			Line:           tx.Line,
		})
	}

	for reason, count := range report.SkipCounts() {
		response.SkipCounts[string(reason)] = count
	}

	if report.Period != nil {
		response.Period = &PeriodResponse{
			StartDate: report.Period.StartDate.Format(dateLayout),
			EndDate:   report.Period.EndDate.Format(dateLayout),
			Months:    report.Period.Months,
		}
	}

	if report.InitialBalance != nil {
		response.InitialBalance = &InitialBalanceResponse{
			AsOf:   report.InitialBalance.AsOf.Format(dateLayout),
			Amount: report.InitialBalance.Amount.StringFixed(2),
		}
	}

	return response
}

// Income Verification Response DTOs

// IncomeVerificationResponse represents a stored verification in API responses
type IncomeVerificationResponse struct {
	ID                    string    `json:"id"`
	ApplicationRef        string    `json:"application_ref"`
	ApplicantID           string    `json:"applicant_id"`
	Status                string    `json:"status"`
	Confirmed             bool      `json:"confirmed"`
	Reused                bool      `json:"reused"`
	StatementDigest       string    `json:"statement_digest"`
	Layout                string    `json:"layout"`
	PeriodStart           string    `json:"period_start,omitempty"`
	PeriodEnd             string    `json:"period_end,omitempty"`
	PeriodMonths          int       `json:"period_months"`
	TransactionCount      int       `json:"transaction_count"`
	IncomeCount           int       `json:"income_count"`
	SkippedCount          int       `json:"skipped_count"`
	TotalIncome           string    `json:"total_income"`
	AverageMonthlyIncome  string    `json:"average_monthly_income"`
	DeclaredMonthlyIncome string    `json:"declared_monthly_income"`
	RequiredMonthlyIncome string    `json:"required_monthly_income"`
	ComputedAt            time.Time `json:"computed_at"`
	CreatedAt             time.Time `json:"created_at"`
}

// NewIncomeVerificationResponse converts a stored verification to its wire form
func NewIncomeVerificationResponse(v *models.IncomeVerification, reused bool) IncomeVerificationResponse {
	response := IncomeVerificationResponse{
		ID:                    v.ID.String(),
		ApplicationRef:        v.ApplicationRef,
		ApplicantID:           v.ApplicantID,
		Status:                v.Status,
		Confirmed:             v.IsConfirmed(),
		Reused:                reused,
		StatementDigest:       v.StatementDigest,
		Layout:                v.Layout,
		PeriodMonths:          v.PeriodMonths,
		TransactionCount:      v.TransactionCount,
		IncomeCount:           v.IncomeCount,
		SkippedCount:          v.SkippedCount,
		TotalIncome:           v.TotalIncome.StringFixed(2),
		AverageMonthlyIncome:  v.AverageMonthlyIncome.StringFixed(2),
		DeclaredMonthlyIncome: v.DeclaredMonthlyIncome.StringFixed(2),
		RequiredMonthlyIncome: v.RequiredMonthlyIncome.StringFixed(2),
		ComputedAt:            v.ComputedAt,
		CreatedAt:             v.CreatedAt,
	}

	if v.PeriodStart != nil {
		response.PeriodStart = v.PeriodStart.Format(dateLayout)
	}
	if v.PeriodEnd != nil {
		response.PeriodEnd = v.PeriodEnd.Format(dateLayout)
	}

	return response
}

// IncomeVerificationListResponse represents a paginated list of verifications
type IncomeVerificationListResponse struct {
	Verifications []IncomeVerificationResponse `json:"verifications"`
	Total         int64                        `json:"total"`
	Offset        int                          `json:"offset"`
	Limit         int                          `json:"limit"`
}

// Dev token DTOs

// DevTokenRequest asks for a locally signed back-office token
type DevTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=officer admin"`
}

// TokenResponse represents the authentication token response
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SampleStatementRequest asks for a synthetic statement with a known income
type SampleStatementRequest struct {
	Layout        string `json:"layout" validate:"omitempty,max=32"`
	PeriodStart   string `json:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd     string `json:"period_end" validate:"omitempty,datetime=2006-01-02"`
	MonthlySalary string `json:"monthly_salary" validate:"omitempty,decimal_amount"`
	Seed          int64  `json:"seed"`
}

// SampleStatementResponse carries the generated text and what parsing it must yield
type SampleStatementResponse struct {
	StatementText       string `json:"statement_text"`
	Layout              string `json:"layout"`
	PeriodStart         string `json:"period_start"`
	PeriodEnd           string `json:"period_end"`
	RowCount            int    `json:"row_count"`
	ExpectedIncomeCount int    `json:"expected_income_count"`
	ExpectedTotalIncome string `json:"expected_total_income"`
}

// NewSampleStatementResponse converts a generated sample to its response shape
func NewSampleStatementResponse(sample *models.SampleStatement) SampleStatementResponse {
	return SampleStatementResponse{
		StatementText:       sample.Text,
		Layout:              sample.Layout,
		PeriodStart:         sample.PeriodStart.Format(dateLayout),
		PeriodEnd:           sample.PeriodEnd.Format(dateLayout),
		RowCount:            sample.RowCount,
		ExpectedIncomeCount: sample.IncomeCount,
		ExpectedTotalIncome: sample.ExpectedIncome.StringFixed(2),
	}
}

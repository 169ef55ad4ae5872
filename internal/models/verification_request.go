package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor identifies who triggered an operation, for the audit trail
type Actor struct {
	UserID    uuid.UUID
	IPAddress string
	UserAgent string
}

// Principal is the subject an access token is issued for
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// VerifyIncomeInput is one request to verify an applicant's declared income
type VerifyIncomeInput struct {
	ApplicationRef        string
	ApplicantID           string
	DeclaredMonthlyIncome decimal.Decimal
	StatementText         string
	Actor                 Actor
}

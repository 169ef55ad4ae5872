package statement

import (
	"strings"
)

// Classifier decides which credit rows count as earned income. It holds only
// lower-cased copies of the layout vocabulary and is safe for concurrent use.
type Classifier struct {
	topUpLabel       string
	purchaseLabel    string
	excludedSources  []string
	balanceLineWords []string
	incomeKeywords   []string
}

// NewClassifier builds a classifier for the layout. Extra excluded sources are
// appended to the layout's own list.
func NewClassifier(layout Layout, extraExcluded ...string) *Classifier {
	excluded := make([]string, 0, len(layout.ExcludedSources)+len(extraExcluded))
	excluded = append(excluded, layout.ExcludedSources...)
	excluded = append(excluded, extraExcluded...)

	return &Classifier{
		topUpLabel:       layout.TopUpLabel,
		purchaseLabel:    layout.PurchaseLabel,
		excludedSources:  lowerAll(excluded),
		balanceLineWords: lowerAll(layout.BalanceLineWords),
		incomeKeywords:   lowerAll(layout.IncomeKeywords),
	}
}

// Classify applies the income rules in order. The first rule that rejects the
// row determines the returned reason; included rows return an empty reason.
func (c *Classifier) Classify(tx RawTransaction, initial *InitialBalance) (bool, SkipReason) {
	if tx.Amount.IsZero() {
		return false, ReasonZeroAmount
	}

	if initial != nil && tx.Amount.Equal(initial.Amount) {
		return false, ReasonMatchesInitialBalance
	}

	if !tx.IsCredit() {
		return false, ReasonDebit
	}

	details := strings.ToLower(tx.Details)

	if containsAny(details, c.excludedSources) {
		return false, ReasonOwnAccountTransfer
	}

	switch {
	case strings.EqualFold(tx.OperationLabel, c.topUpLabel):
		if containsAny(details, c.balanceLineWords) {
			return false, ReasonBalanceLine
		}
		return true, ""
	case strings.EqualFold(tx.OperationLabel, c.purchaseLabel):
		return false, ReasonPurchaseRefund
	default:
		if containsAny(details, c.incomeKeywords) {
			return true, ""
		}
		return false, ReasonNoIncomeKeyword
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	lowered := make([]string, 0, len(values))
	for _, v := range values {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(v)))
	}
	return lowered
}

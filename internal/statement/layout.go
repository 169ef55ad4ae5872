package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	LayoutEnglish = "english"
	LayoutKaspi   = "kaspi"
)

var ErrUnknownLayout = errors.New("unknown statement layout")

// Layout is the printed vocabulary of one statement format. Only the words
// differ between layouts; the row shape and the classification rules are shared.
type Layout struct {
	Name string

	// PeriodMarker must capture the start and end DD.MM.YY dates
	PeriodMarker *regexp.Regexp
	// BalanceMarker must capture the date, the optional sign and the amount
	BalanceMarker *regexp.Regexp

	TopUpLabel    string
	PurchaseLabel string

	// BalanceLineWords disqualify a Top-up row that is really a balance summary
	BalanceLineWords []string
	// IncomeKeywords admit credit rows with any other operation label
	IncomeKeywords []string
	// ExcludedSources are internal transfers between the applicant's own accounts
	ExcludedSources []string
}

const (
	datePattern   = `(\d{2}\.\d{2}\.\d{2})`
	amountPattern = `(\d[\d \t\x{00A0}\x{202F},.]*)`
	sepPattern    = `[ \t\x{00A0}\x{202F}]`
	signPattern   = `\s*:` + sepPattern + `*([+-])?` + sepPattern + `*`
)

// EnglishLayout is the transliterated statement vocabulary
var EnglishLayout = Layout{
	Name:          LayoutEnglish,
	PeriodMarker:  regexp.MustCompile(`(?i)period\s+from\s+` + datePattern + `\s+to\s+` + datePattern),
	BalanceMarker: regexp.MustCompile(`(?i)available\s+as\s+of\s+` + datePattern + signPattern + amountPattern),
	TopUpLabel:    "Top-up",
	PurchaseLabel: "Purchase",
	BalanceLineWords: []string{
		"balance",
		"available",
	},
	IncomeKeywords: []string{
		"salary",
		"transfer",
	},
	ExcludedSources: []string{
		"from own Kaspi deposit",
		"from own Kaspi Pay account",
	},
}

// KaspiLayout is the Russian-language vocabulary of the original bank export
var KaspiLayout = Layout{
	Name:          LayoutKaspi,
	PeriodMarker:  regexp.MustCompile(`(?i)период\s+с\s+` + datePattern + `\s+по\s+` + datePattern),
	BalanceMarker: regexp.MustCompile(`(?i)доступно\s+на\s+` + datePattern + signPattern + amountPattern),
	TopUpLabel:    "Пополнение",
	PurchaseLabel: "Покупка",
	BalanceLineWords: []string{
		"остаток",
		"доступно",
	},
	IncomeKeywords: []string{
		"зарплата",
		"перевод",
	},
	ExcludedSources: []string{
		"с Kaspi Депозита",
		"со своего счета Kaspi Pay",
	},
}

// LayoutByName resolves a configured layout name
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LayoutEnglish:
		return EnglishLayout, nil
	case LayoutKaspi:
		return KaspiLayout, nil
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

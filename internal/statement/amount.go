package statement

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a locale-formatted numeral such as "150 000,00" into an
// exact decimal. Group separators are any unicode space (statement exports use
// NBSP), the decimal separator is a comma or, in machine exports, a period.
// A token may carry at most one separator of either kind, so "1.000,00" is
// rejected. ok is false for anything that does not describe a single
// non-negative number.
func ParseAmount(token string) (decimal.Decimal, bool) {
	var b strings.Builder
	b.Grow(len(token))

	separators := 0
	digits := 0
	for _, r := range token {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == ',' || r == '.':
			separators++
			b.WriteByte('.')
		default:
			return decimal.Zero, false
		}
	}

	if digits == 0 || separators > 1 {
		return decimal.Zero, false
	}

	canonical := b.String()
	if strings.HasPrefix(canonical, ".") || strings.HasSuffix(canonical, ".") {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

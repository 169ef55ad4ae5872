package statement

import (
	"fmt"
	"time"
)

// ShortDateLayout is the DD.MM.YY form used throughout the statement.
// Two-digit years follow the time package rule: 69-99 map to 19xx, 00-68 to 20xx.
const ShortDateLayout = "02.01.06"

// ParseShortDate parses a DD.MM.YY date in UTC
func ParseShortDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ShortDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid statement date %q: %w", s, err)
	}
	return t, nil
}

// MonthsBetween counts calendar months between two dates from the year and
// month parts only. A range running from the first of a month to the last day
// of a month is end-inclusive, so 01.01-31.03 is three months. Same-month and
// reversed ranges count as one month.
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months >= 0 && start.Day() == 1 && isLastDayOfMonth(end) {
		months++
	}
	if months < 1 {
		return 1
	}
	return months
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

// DetectPeriod finds the first period marker in the text. It returns nil when
// the marker is absent or either date is not a real calendar date.
func DetectPeriod(text string, layout Layout) *StatementPeriod {
	match := layout.PeriodMarker.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	start, err := ParseShortDate(match[1])
	if err != nil {
		return nil
	}
	end, err := ParseShortDate(match[2])
	if err != nil {
		return nil
	}

	return &StatementPeriod{
		StartDate: start,
		EndDate:   end,
		Months:    MonthsBetween(start, end),
	}
}

// DetectInitialBalance finds the first "available as of" marker
func DetectInitialBalance(text string, layout Layout) *InitialBalance {
	match := layout.BalanceMarker.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	asOf, err := ParseShortDate(match[1])
	if err != nil {
		return nil
	}

	amount, ok := ParseAmount(match[3])
	if !ok {
		return nil
	}

	return &InitialBalance{AsOf: asOf, Amount: amount}
}

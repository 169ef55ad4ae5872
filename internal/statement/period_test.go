package statement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseShortDate_CenturyRule(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"05.01.24", date(2024, time.January, 5)},
		{"31.12.00", date(2000, time.December, 31)},
		{"01.06.68", date(2068, time.June, 1)},
		{"01.06.69", date(1969, time.June, 1)},
		{"28.02.99", date(1999, time.February, 28)},
	}

	for _, tt := range tests {
		got, err := ParseShortDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: got %s", tt.in, got)
	}
}

func TestParseShortDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "32.01.24", "01.13.24", "1.1.24", "01-01-24", "30.02.24"} {
		_, err := ParseShortDate(in)
		assert.Error(t, err, in)
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"quarter through last day", date(2024, 1, 1), date(2024, 3, 31), 3},
		{"mid-month start", date(2024, 1, 15), date(2024, 3, 31), 2},
		{"first to first", date(2024, 1, 1), date(2024, 4, 1), 3},
		{"february in leap year", date(2024, 2, 1), date(2024, 2, 29), 1},
		{"half year", date(2023, 7, 1), date(2023, 12, 31), 6},
		{"across year", date(2023, 11, 15), date(2024, 2, 1), 3},
		{"full year", date(2023, 1, 1), date(2024, 1, 1), 12},
		{"same month", date(2024, 5, 1), date(2024, 5, 31), 1},
		{"same day", date(2024, 5, 10), date(2024, 5, 10), 1},
		{"reversed", date(2024, 6, 1), date(2024, 1, 1), 1},
		{"reversed across years", date(2025, 1, 1), date(2023, 1, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.start, tt.end))
		})
	}
}

func TestDetectPeriod(t *testing.T) {
	period := DetectPeriod("Statement\nPeriod from 01.11.23 to 01.02.24\n", EnglishLayout)
	require.NotNil(t, period)
	assert.Equal(t, 3, period.Months)
	assert.True(t, date(2023, 11, 1).Equal(period.StartDate))
	assert.True(t, date(2024, 2, 1).Equal(period.EndDate))
}

func TestDetectPeriod_FirstMarkerWins(t *testing.T) {
	text := "period from 01.01.24 to 01.03.24\nperiod from 01.01.24 to 01.12.24"
	period := DetectPeriod(text, EnglishLayout)
	require.NotNil(t, period)
	assert.Equal(t, 2, period.Months)
}

func TestDetectPeriod_AbsentOrInvalid(t *testing.T) {
	assert.Nil(t, DetectPeriod("", EnglishLayout))
	assert.Nil(t, DetectPeriod("statement for January 2024", EnglishLayout))
	assert.Nil(t, DetectPeriod("period from 01.01.2024 to 31.03.2024", EnglishLayout))
	assert.Nil(t, DetectPeriod("period from 35.01.24 to 31.03.24", EnglishLayout))
}

func TestDetectPeriod_Kaspi(t *testing.T) {
	period := DetectPeriod("Выписка за период с 01.01.24 по 31.03.24", KaspiLayout)
	require.NotNil(t, period)
	assert.Equal(t, 3, period.Months)
}

func TestDetectInitialBalance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"with sign and currency", "Available as of 01.01.24: + 50 000,00 ₸", "50000"},
		{"without sign", "available as of 01.01.24: 1 250,75 ₸", "1250.75"},
		{"no-break spaces", "Available as of 01.01.24:\u00a0+\u00a050\u00a0000,00\u00a0₸", "50000"},
		{"no currency at end of line", "Available as of 01.01.24: + 300,00\n05.01.24 + 1,00 ₸ Top-up", "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := DetectInitialBalance(tt.text, EnglishLayout)
			require.NotNil(t, balance)
			assert.True(t, balance.Amount.Equal(decimal.RequireFromString(tt.want)), "got %s", balance.Amount)
			assert.True(t, date(2024, 1, 1).Equal(balance.AsOf))
		})
	}
}

func TestDetectInitialBalance_Unparseable(t *testing.T) {
	assert.Nil(t, DetectInitialBalance("no marker here", EnglishLayout))
	assert.Nil(t, DetectInitialBalance("Available as of 01.01.24: + 1,000,00 ₸", EnglishLayout))
	assert.Nil(t, DetectInitialBalance("Available as of 41.01.24: + 100,00 ₸", EnglishLayout))
}

func TestLayoutByName(t *testing.T) {
	layout, err := LayoutByName("")
	require.NoError(t, err)
	assert.Equal(t, LayoutEnglish, layout.Name)

	layout, err = LayoutByName(" Kaspi ")
	require.NoError(t, err)
	assert.Equal(t, LayoutKaspi, layout.Name)

	_, err = LayoutByName("barclays")
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

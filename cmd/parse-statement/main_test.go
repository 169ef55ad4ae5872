package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishStatement = `Kaspi Gold
Statement for the period from 01.01.24 to 31.03.24
Available as of 01.01.24: + 50 000,00 ₸

05.01.24 + 50 000,00 ₸ Top-up From another bank card
10.02.24 + 150 000,00 ₸ Top-up Salary February
`

const kaspiStatement = "Выписка по Kaspi Gold за период с 01.01.24 по 31.03.24\n" +
	"Доступно на 01.01.24: + 50 000,00 ₸\n" +
	"05.01.24 + 50 000,00 ₸ Пополнение С карты другого банка\n" +
	"10.02.24 + 150 000,00 ₸ Переводы Зарплата за февраль\n" +
	"15.02.24 - 3 000,00 ₸ Покупка Магазин\n"

type decodedReport struct {
	Incomes []struct {
		Amount  string `json:"amount"`
		Details string `json:"details"`
	} `json:"incomes"`
	TotalIncome          string         `json:"total_income"`
	PeriodMonths         int            `json:"period_months"`
	AverageMonthlyIncome string         `json:"average_monthly_income"`
	SkipCounts           map[string]int `json:"skip_counts"`
}

func writeStatement(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_SingleFilePerLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		text   string
	}{
		{name: "english", layout: "english", text: englishStatement},
		{name: "kaspi", layout: "kaspi", text: kaspiStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeStatement(t, t.TempDir(), tt.name+".txt", tt.text)

			stdout, _, err := runCLI(t, "", "-layout", tt.layout, path)
			require.NoError(t, err)

			var report decodedReport
			require.NoError(t, json.Unmarshal([]byte(stdout), &report))
			require.Len(t, report.Incomes, 1)
			assert.Equal(t, "150000.00", report.TotalIncome)
			assert.Equal(t, 3, report.PeriodMonths)
			assert.Equal(t, "50000.00", report.AverageMonthlyIncome)
			assert.Equal(t, 1, report.SkipCounts["matches_initial_balance"])
		})
	}
}

func TestRun_MultipleFilesKeepArgumentOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := 1; i <= 6; i++ {
		text := fmt.Sprintf("period from 01.01.24 to 31.01.24\n05.01.24 + %d 000,00 ₸ Top-up Salary\n", i)
		paths = append(paths, writeStatement(t, dir, fmt.Sprintf("statement-%d.txt", i), text))
	}

	stdout, _, err := runCLI(t, "", paths...)
	require.NoError(t, err)

	var reports []struct {
		File   string        `json:"file"`
		Report decodedReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, len(paths))
	for i, r := range reports {
		assert.Equal(t, paths[i], r.File)
		assert.Equal(t, fmt.Sprintf("%d000.00", i+1), r.Report.TotalIncome)
	}
}

func TestRun_ReadsStdinWithoutArguments(t *testing.T) {
	stdout, _, err := runCLI(t, englishStatement)
	require.NoError(t, err)

	var report decodedReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "150000.00", report.TotalIncome)
}

func TestRun_ExcludeFlag(t *testing.T) {
	text := "05.01.24 + 5 000,00 ₸ Transfers Transfer from savings jar\n" +
		"06.01.24 + 8 000,00 ₸ Transfers Transfer from employer\n"
	path := writeStatement(t, t.TempDir(), "transfers.txt", text)

	stdout, _, err := runCLI(t, "", "-exclude", "from savings jar, ", path)
	require.NoError(t, err)

	var report decodedReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Incomes, 1)
	assert.Equal(t, "8000.00", report.TotalIncome)
	assert.Equal(t, 1, report.SkipCounts["own_account_transfer"])
}

func TestRun_VerboseLogsDroppedRows(t *testing.T) {
	path := writeStatement(t, t.TempDir(), "broken.txt", "05.01.24 + 1,000,00 ₸ Top-up Salary\n")

	_, stderr, err := runCLI(t, "", "-v", path)

	require.NoError(t, err)
	assert.Contains(t, stderr, "dropping statement row")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeStatement(t, dir, "good.txt", englishStatement)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing file", args: []string{good, filepath.Join(dir, "missing.txt")}, wantErr: "missing.txt"},
		{name: "unknown layout", args: []string{"-layout", "swift", good}, wantErr: "swift"},
		{name: "unknown flag", args: []string{"-format", "csv", good}, wantErr: "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, "", tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, stdout)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, splitList(" a ,, b c ,"))
	assert.Nil(t, splitList(""))
}

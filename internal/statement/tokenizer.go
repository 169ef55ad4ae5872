package statement

import (
	"log/slog"
	"regexp"
	"strings"
)

const wordPattern = `[^\s\x{00A0}\x{202F}]`

var (
	// dateAnchor marks the start of a ledger row; it also terminates the
	// details of the previous row.
	dateAnchor = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}(?:\s|\x{00A0}|\x{202F}|$)`)

	// recordHeader is <date> <sign> <amount> <currency> <operation> [details]
	recordHeader = regexp.MustCompile(`^` + datePattern +
		sepPattern + `+([+-])` + sepPattern + `*` + amountPattern +
		sepPattern + `+([^\d\s\x{00A0}\x{202F}]` + wordPattern + `*)` +
		sepPattern + `+(` + wordPattern + `+)` +
		`(?:` + sepPattern + `+(.*))?$`)
)

type tokenizerState int

const (
	stateIdle tokenizerState = iota
	stateInRecord
	stateDropped
)

// tokenizer walks the statement line by line. A record stays open until the
// next date-anchored line or the end of the text; non-anchored lines in
// between extend its details.
type tokenizer struct {
	logger *slog.Logger

	state   tokenizerState
	current RawTransaction
	details []string

	transactions []RawTransaction
	diagnostics  []Diagnostic
}

// Tokenize extracts ledger rows from statement text. Rows that cannot be
// parsed are reported as diagnostics and never returned.
func Tokenize(text string, logger *slog.Logger) ([]RawTransaction, []Diagnostic) {
	if logger == nil {
		logger = slog.Default()
	}

	t := &tokenizer{logger: logger}
	for i, raw := range strings.Split(text, "\n") {
		t.feed(i+1, strings.TrimRight(raw, "\r"))
	}
	t.flush()

	if t.transactions == nil {
		t.transactions = []RawTransaction{}
	}
	return t.transactions, t.diagnostics
}

func (t *tokenizer) feed(lineNo int, line string) {
	trimmed := strings.TrimSpace(line)

	if !dateAnchor.MatchString(trimmed) {
		if t.state == stateInRecord {
			t.details = append(t.details, line)
		}
		return
	}

	t.flush()
	t.open(lineNo, trimmed)
}

func (t *tokenizer) open(lineNo int, line string) {
	match := recordHeader.FindStringSubmatch(line)
	if match == nil {
		t.logger.Warn("dropping dated statement line that is not a ledger row",
			"line", lineNo,
			"text", line)
		t.drop(lineNo, ReasonMalformedRow, line)
		return
	}

	date, err := ParseShortDate(match[1])
	if err != nil {
		t.drop(lineNo, ReasonInvalidDate, match[1])
		return
	}

	amount, ok := ParseAmount(match[3])
	if !ok {
		t.logger.Warn("dropping statement row with unparseable amount",
			"line", lineNo,
			"amount", strings.TrimSpace(match[3]))
		t.drop(lineNo, ReasonUnparseableAmount, strings.TrimSpace(match[3]))
		return
	}

	t.current = RawTransaction{
		Date:           date,
		Sign:           Sign(match[2]),
		Amount:         amount,
		OperationLabel: match[5],
		Line:           lineNo,
	}
	t.details = t.details[:0]
	if match[6] != "" {
		t.details = append(t.details, match[6])
	}
	t.state = stateInRecord
}

// drop discards the row; its continuation lines are swallowed until the next anchor
func (t *tokenizer) drop(lineNo int, reason SkipReason, detail string) {
	t.diagnostics = append(t.diagnostics, Diagnostic{
		Line:   lineNo,
		Reason: reason,
		Detail: detail,
	})
	t.state = stateDropped
}

func (t *tokenizer) flush() {
	if t.state == stateInRecord {
		t.current.Details = strings.TrimSpace(strings.Join(t.details, "\n"))
		t.transactions = append(t.transactions, t.current)
	}
	t.current = RawTransaction{}
	t.details = t.details[:0]
	t.state = stateIdle
}

package statement

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillworks/qbtill/internal/model"
)

// Required column display names, after header normalization.
const (
	colCompletionTime = "completion time"
	colPaidIn         = "paid in"
	colWithdrawn      = "withdrawn"
	colDetails        = "details"
	colOtherParty     = "other party info"
)

// completionLayouts are the timestamp shapes seen across statement exports.
// Tried in order; first parse wins.
var completionLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// previewRows is how many data rows the UI preview carries.
const previewRows = 5

// Preview is display-only information for the upload UI. It has no bearing
// on export correctness.
type Preview struct {
	RowCount    int // data rows surviving date filtering
	ColumnCount int
	Header      []string
	Head        [][]string // first rows, raw cell text
}

// Load parses raw statement bytes into normalized rows using the built-in
// parser registry. The filename chooses the parser by extension.
func Load(raw []byte, filename string, preambleRows int) ([]model.StatementRow, Preview, error) {
	return LoadWith(DefaultRegistry(), raw, filename, preambleRows)
}

// LoadWith is Load with an explicit parser registry.
func LoadWith(reg *Registry, raw []byte, filename string, preambleRows int) ([]model.StatementRow, Preview, error) {
	p := reg.ForFile(filename)
	if p == nil {
		return nil, Preview{}, &ParseError{Filename: filename, Err: errors.New("unsupported file extension")}
	}

	grid, err := p.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, Preview{}, &ParseError{Filename: filename, Err: err}
	}

	if len(grid) <= preambleRows {
		return nil, Preview{}, &ParseError{Filename: filename, Err: errors.New("no header row after preamble")}
	}
	grid = grid[preambleRows:]

	header := grid[0]
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, Preview{}, err
	}

	var rows []model.StatementRow
	var head [][]string
	for _, rec := range grid[1:] {
		if isBlank(rec) {
			continue
		}
		row, ok := coerceRow(rec, cols)
		if !ok {
			// No parseable completion time: the row never reaches
			// classification.
			continue
		}
		rows = append(rows, row)
		if len(head) < previewRows {
			head = append(head, rec)
		}
	}

	preview := Preview{
		RowCount:    len(rows),
		ColumnCount: len(header),
		Header:      header,
		Head:        head,
	}
	return rows, preview, nil
}

// columns maps each required field to its index in the header row.
type columns struct {
	completionTime int
	paidIn         int
	withdrawn      int
	details        int
	otherParty     int
}

func resolveColumns(header []string) (columns, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[normalizeHeader(h)] = i
	}

	cols := columns{}
	var missing []string
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{colCompletionTime, &cols.completionTime},
		{colPaidIn, &cols.paidIn},
		{colWithdrawn, &cols.withdrawn},
		{colDetails, &cols.details},
		{colOtherParty, &cols.otherParty},
	} {
		i, ok := byName[want.name]
		if !ok {
			missing = append(missing, want.name)
			continue
		}
		*want.dst = i
	}

	if len(missing) > 0 {
		return columns{}, &SchemaError{Missing: missing}
	}
	return cols, nil
}

// normalizeHeader trims a header cell, collapses internal whitespace runs to
// a single space, and case-folds it for matching.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

func coerceRow(rec []string, cols columns) (model.StatementRow, bool) {
	t, ok := parseCompletionTime(cell(rec, cols.completionTime))
	if !ok {
		return model.StatementRow{}, false
	}

	withdrawn := parseAmount(cell(rec, cols.withdrawn))
	// Some statement variants encode withdrawals as negative numbers;
	// downstream logic always sees a magnitude.
	if withdrawn.IsNegative() {
		withdrawn = withdrawn.Abs()
	}

	return model.StatementRow{
		CompletionTime: t,
		PaidIn:         parseAmount(cell(rec, cols.paidIn)),
		Withdrawn:      withdrawn,
		Details:        strings.TrimSpace(cell(rec, cols.details)),
		OtherParty:     strings.TrimSpace(cell(rec, cols.otherParty)),
	}, true
}

func parseCompletionTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range completionLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount coerces a cell to a decimal. Blank or unparseable cells become
// zero so one bad cell cannot abort the conversion. Thousands separators are
// tolerated.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// cell returns rec[i], tolerating short records from ragged spreadsheets.
func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

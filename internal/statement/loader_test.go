package statement

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoad_MpesaStatement(t *testing.T) {
	raw, err := os.ReadFile("../../testdata/mpesa_statement.csv")
	require.NoError(t, err)

	rows, preview, err := Load(raw, "mpesa_statement.csv", 6)
	require.NoError(t, err)

	// 8 data rows, one with an unparseable completion time.
	assert.Len(t, rows, 7)
	assert.Equal(t, 7, preview.RowCount)
	assert.Equal(t, 8, preview.ColumnCount)
	assert.Len(t, preview.Head, 5)

	first := rows[0]
	assert.Equal(t, 2024, first.CompletionTime.Year())
	assert.Equal(t, 5, first.CompletionTime.Day())
	assert.Equal(t, "500.00", first.PaidIn.StringFixed(2))
	assert.True(t, first.Withdrawn.IsZero())
	assert.Equal(t, "Merchant Payment", first.Details)
	assert.Equal(t, "254712345678 - JOHN KAMAU", first.OtherParty)

	// Thousands separator tolerated.
	assert.Equal(t, "1200.00", rows[4].PaidIn.StringFixed(2))

	// The pending row with completion time "N/A" is gone.
	for _, row := range rows {
		assert.NotEqual(t, "254711000333 - GRACE AKINYI", row.OtherParty)
	}
}

func TestLoad_MissingColumns(t *testing.T) {
	csv := strings.Join([]string{
		"Receipt No.,Completion Time,Details",
		"A1,2024-01-05 09:12:44,Merchant Payment",
	}, "\n")

	_, _, err := Load([]byte(csv), "statement.csv", 0)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.ElementsMatch(t, []string{"paid in", "withdrawn", "other party info"}, schemaErr.Missing)
	assert.Contains(t, err.Error(), "paid in")
}

func TestLoad_HeaderNormalization(t *testing.T) {
	csv := strings.Join([]string{
		"  Completion   Time ,PAID IN,Withdrawn, details ,Other  Party   Info",
		"2024-01-05 09:12:44,500.00,, Merchant Payment , JOHN ",
	}, "\n")

	rows, _, err := Load([]byte(csv), "statement.csv", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Merchant Payment", rows[0].Details)
	assert.Equal(t, "JOHN", rows[0].OtherParty)
}

func TestLoad_NegativeWithdrawnNormalized(t *testing.T) {
	csv := strings.Join([]string{
		"Completion Time,Paid In,Withdrawn,Details,Other Party Info",
		"2024-01-05 09:12:50,,-50.00,Pay Merchant Charge,",
	}, "\n")

	rows, _, err := Load([]byte(csv), "statement.csv", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "50.00", rows[0].Withdrawn.StringFixed(2))
	assert.False(t, rows[0].Withdrawn.IsNegative())
}

func TestLoad_BadAmountBecomesZero(t *testing.T) {
	csv := strings.Join([]string{
		"Completion Time,Paid In,Withdrawn,Details,Other Party Info",
		"2024-01-05 09:12:50,garbage,,Merchant Payment,JOHN",
	}, "\n")

	rows, _, err := Load([]byte(csv), "statement.csv", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].PaidIn.IsZero())
}

func TestLoad_ShortRowsTolerated(t *testing.T) {
	csv := strings.Join([]string{
		"Completion Time,Paid In,Withdrawn,Details,Other Party Info",
		"2024-01-05 09:12:50,500.00",
	}, "\n")

	rows, _, err := Load([]byte(csv), "statement.csv", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Details)
	assert.Equal(t, "", rows[0].OtherParty)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, _, err := Load([]byte("anything"), "statement.pdf", 0)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "statement.pdf")
}

func TestLoad_PreambleLongerThanFile(t *testing.T) {
	_, _, err := Load([]byte("only,one,row\n"), "statement.csv", 6)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"M-PESA MERCHANT ACCOUNT STATEMENT"},
		{"Completion Time", "Paid In", "Withdrawn", "Details", "Other Party Info"},
		{"2024-01-05 09:12:44", "500.00", "", "Merchant Payment", "JOHN KAMAU"},
		{"2024-01-05 09:12:50", "", "50.00", "Pay Merchant Charge", ""},
	}
	for i, row := range cells {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	rows, preview, err := Load(buf.Bytes(), "statement.xlsx", 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "500.00", rows[0].PaidIn.StringFixed(2))
	assert.Equal(t, "50.00", rows[1].Withdrawn.StringFixed(2))
	assert.Equal(t, 2, preview.RowCount)
}

func TestLoad_MalformedXLSX(t *testing.T) {
	_, _, err := Load([]byte("not a workbook"), "statement.xlsx", 0)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	for file, format := range map[string]string{
		"statement.csv":  "csv",
		"STATEMENT.XLSX": "xlsx",
		"statement.xls":  "xls",
	} {
		p := r.ForFile(file)
		require.NotNil(t, p, file)
		assert.Equal(t, format, p.Format())
	}

	assert.Nil(t, r.ForFile("statement.txt"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{}, ".csv")
	assert.Panics(t, func() { r.Register(&CSVParser{}, ".csv") })
}

func TestCSVParser_Malformed(t *testing.T) {
	p := &CSVParser{}
	_, err := p.Parse(strings.NewReader("a,\"unterminated\n"))
	assert.Error(t, err)

	var parseErr *ParseError
	_, _, err = Load([]byte("a,\"unterminated\n"), "statement.csv", 0)
	require.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, errors.Unwrap(parseErr))
}

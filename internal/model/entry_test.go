package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntry_SplitAmount(t *testing.T) {
	e := LedgerEntry{Amount: decimal.NewFromFloat(123.45)}
	assert.Equal(t, "-123.45", e.SplitAmount().StringFixed(2))

	e = LedgerEntry{Amount: decimal.NewFromFloat(-80)}
	assert.Equal(t, "80.00", e.SplitAmount().StringFixed(2))
}

func TestLedgerEntry_Balanced(t *testing.T) {
	e := LedgerEntry{Amount: decimal.NewFromFloat(500)}
	assert.True(t, e.Balanced())

	e = LedgerEntry{Amount: decimal.Zero}
	assert.True(t, e.Balanced())
}

func TestStatementRow_Date(t *testing.T) {
	row := StatementRow{
		CompletionTime: time.Date(2024, 1, 5, 14, 3, 11, 0, time.UTC),
	}
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), row.Date())

	// Same calendar day, different times, same key.
	other := StatementRow{
		CompletionTime: time.Date(2024, 1, 5, 9, 12, 44, 0, time.UTC),
	}
	assert.Equal(t, row.Date(), other.Date())
}

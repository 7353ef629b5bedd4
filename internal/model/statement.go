package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow represents one normalized merchant statement record.
// Amounts are non-negative magnitudes; direction is carried by which
// column is populated (and ultimately by the row's Category).
type StatementRow struct {
	CompletionTime time.Time
	PaidIn         decimal.Decimal // credited to the merchant account
	Withdrawn      decimal.Decimal // debited from the merchant account
	Details        string
	OtherParty     string
}

// Date returns the calendar date of the row, with time of day and
// zone discarded. Used as the merchant-charge aggregation key.
func (r StatementRow) Date() time.Time {
	t := r.CompletionTime
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

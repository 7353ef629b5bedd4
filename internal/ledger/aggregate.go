package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillworks/qbtill/internal/model"
)

// ChargeGroup is one day's worth of merchant service charges. Individual
// charge rows are numerous and low-value; a daily summary keeps the ledger
// readable without losing the total.
type ChargeGroup struct {
	Date  time.Time
	Total decimal.Decimal
}

// AggregateCharges collapses merchant-charge rows into one group per
// calendar date, summing withdrawn amounts. Groups come back ordered by date
// ascending; dates with no rows produce no group.
func AggregateCharges(rows []model.StatementRow) []ChargeGroup {
	byDate := make(map[time.Time]decimal.Decimal)
	for _, row := range rows {
		d := row.Date()
		byDate[d] = byDate[d].Add(row.Withdrawn)
	}

	groups := make([]ChargeGroup, 0, len(byDate))
	for d, total := range byDate {
		groups = append(groups, ChargeGroup{Date: d, Total: total})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

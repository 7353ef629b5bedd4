package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tillworks/qbtill/internal/classify"
	"github.com/tillworks/qbtill/internal/model"
)

// Totals are the summary figures reported alongside an export. They cover
// the full row set after date filtering, including unclassified rows.
type Totals struct {
	PaidIn          decimal.Decimal
	Withdrawn       decimal.Decimal
	MerchantCharges decimal.Decimal
}

// SumTotals computes summary totals over statement rows.
func SumTotals(rows []model.StatementRow) Totals {
	t := Totals{
		PaidIn:          decimal.Zero,
		Withdrawn:       decimal.Zero,
		MerchantCharges: decimal.Zero,
	}
	for _, row := range rows {
		t.PaidIn = t.PaidIn.Add(row.PaidIn)
		t.Withdrawn = t.Withdrawn.Add(row.Withdrawn)
		if classify.Classify(row) == model.CategoryMerchantCharge {
			t.MerchantCharges = t.MerchantCharges.Add(row.Withdrawn)
		}
	}
	return t
}

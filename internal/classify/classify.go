// Package classify maps normalized statement rows to transaction
// categories. Classification is a pure function of the row's amounts and
// details text; row order never matters.
package classify

import (
	"strings"

	"github.com/tillworks/qbtill/internal/model"
)

const (
	// settlementPhrase marks a sweep from the till to the organization's
	// settlement bank account. Matched as a substring.
	settlementPhrase = "merchant account to organization settlement account"
	// chargePhrase marks a provider fee. Matched exactly, not as a
	// substring, so unrelated "charge" mentions stay out.
	chargePhrase = "pay merchant charge"
)

// Classify assigns a statement row exactly one category. Rules are evaluated
// top to bottom with first-match-wins semantics; the raw conditions are not
// pairwise disjoint, so this order is part of the contract and must not be
// reordered.
func Classify(row model.StatementRow) model.Category {
	details := strings.ToLower(strings.TrimSpace(row.Details))

	switch {
	case row.PaidIn.IsPositive():
		return model.CategoryCustomerPayment
	case strings.Contains(details, settlementPhrase):
		return model.CategorySettlementTransfer
	case details == chargePhrase:
		return model.CategoryMerchantCharge
	case row.Withdrawn.IsPositive():
		return model.CategoryOtherWithdrawal
	default:
		return model.CategoryUnclassified
	}
}

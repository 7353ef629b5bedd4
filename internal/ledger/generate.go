// Package ledger turns classified statement rows into balanced double-entry
// ledger entries.
package ledger

import (
	"strings"

	"github.com/tillworks/qbtill/internal/classify"
	"github.com/tillworks/qbtill/internal/config"
	"github.com/tillworks/qbtill/internal/model"
)

// Generator builds ledger entries from statement rows using an explicit
// account mapping. Account names and labels live in configuration, never in
// the generation branches.
type Generator struct {
	accounts config.AccountsConfig
}

// NewGenerator creates a Generator for an account mapping.
func NewGenerator(accounts config.AccountsConfig) *Generator {
	return &Generator{accounts: accounts}
}

// Entries generates one entry per classified row, except merchant charges,
// which collapse into one entry per calendar date, and unclassified rows,
// which are skipped. Per-row entries keep statement order; daily charge
// summaries follow, ordered by date ascending.
//
// Sign convention: money leaving the till is negative on the till line, for
// every category. The split line always carries the negation.
func (g *Generator) Entries(rows []model.StatementRow) []model.LedgerEntry {
	var entries []model.LedgerEntry
	var charges []model.StatementRow

	for _, row := range rows {
		switch classify.Classify(row) {
		case model.CategoryCustomerPayment:
			entries = append(entries, g.customerPayment(row))
		case model.CategorySettlementTransfer:
			entries = append(entries, g.settlementTransfer(row))
		case model.CategoryMerchantCharge:
			charges = append(charges, row)
		case model.CategoryOtherWithdrawal:
			entries = append(entries, g.otherWithdrawal(row))
		case model.CategoryUnclassified:
			// No ledger entry. Not an error.
		}
	}

	for _, group := range AggregateCharges(charges) {
		entries = append(entries, g.chargeSummary(group))
	}
	return entries
}

func (g *Generator) customerPayment(row model.StatementRow) model.LedgerEntry {
	name := row.OtherParty
	if name == "" {
		name = g.accounts.WalkInName
	}
	return model.LedgerEntry{
		Type:         model.TxnTypePayment,
		Date:         row.Date(),
		Account:      g.accounts.Till,
		SplitAccount: g.accounts.Receivable,
		Name:         name,
		Amount:       row.PaidIn,
		Memo:         memo(row),
	}
}

func (g *Generator) settlementTransfer(row model.StatementRow) model.LedgerEntry {
	return model.LedgerEntry{
		Type:         model.TxnTypeTransfer,
		Date:         row.Date(),
		Account:      g.accounts.Till,
		SplitAccount: g.accounts.SettlementBank,
		Name:         g.accounts.SettlementBank,
		Amount:       row.Withdrawn.Neg(),
		Memo:         memo(row),
	}
}

func (g *Generator) otherWithdrawal(row model.StatementRow) model.LedgerEntry {
	return model.LedgerEntry{
		Type:         model.TxnTypeGeneralJournal,
		Date:         row.Date(),
		Account:      g.accounts.Till,
		SplitAccount: g.accounts.BankCharges,
		Name:         row.OtherParty,
		Amount:       row.Withdrawn.Neg(),
		Memo:         memo(row),
	}
}

func (g *Generator) chargeSummary(group ChargeGroup) model.LedgerEntry {
	return model.LedgerEntry{
		Type:         model.TxnTypeGeneralJournal,
		Date:         group.Date,
		Account:      g.accounts.Till,
		SplitAccount: g.accounts.MerchantCharges,
		Name:         g.accounts.ChargeProvider,
		Amount:       group.Total.Neg(),
		Memo:         "Merchant charges for " + group.Date.Format("2006-01-02"),
	}
}

// memo joins the counterparty label and the details text with " | ",
// dropping whichever side is empty.
func memo(row model.StatementRow) string {
	parts := make([]string, 0, 2)
	if row.OtherParty != "" {
		parts = append(parts, row.OtherParty)
	}
	if row.Details != "" {
		parts = append(parts, row.Details)
	}
	return strings.Join(parts, " | ")
}

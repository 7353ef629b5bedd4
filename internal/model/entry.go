package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType is the IIF transaction type of a ledger entry.
type TxnType string

const (
	TxnTypePayment        TxnType = "PAYMENT"
	TxnTypeTransfer       TxnType = "TRANSFER"
	TxnTypeGeneralJournal TxnType = "GENERAL JOURNAL"
)

// LedgerEntry is one balanced double-entry: a transaction line against
// Account and a split line against SplitAccount. Amount is the
// transaction-line amount; the split line always carries its negation,
// so an entry is balanced by construction.
type LedgerEntry struct {
	Type         TxnType
	Date         time.Time
	Account      string // transaction-line account
	SplitAccount string
	Name         string // counterparty shown on both lines
	Amount       decimal.Decimal
	Memo         string
}

// SplitAmount returns the split-line amount (the exact negation of Amount).
func (e LedgerEntry) SplitAmount() decimal.Decimal {
	return e.Amount.Neg()
}

// Balanced reports whether the two lines sum to zero. It holds for every
// entry this package can represent; the ledger generator still asserts it
// before handing entries to the serializer.
func (e LedgerEntry) Balanced() bool {
	return e.Amount.Add(e.SplitAmount()).IsZero()
}

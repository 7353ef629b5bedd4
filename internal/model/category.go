package model

// Category classifies a statement row into exactly one transaction kind.
type Category string

const (
	// CategoryCustomerPayment is money paid into the till by a customer.
	CategoryCustomerPayment Category = "customer-payment"
	// CategorySettlementTransfer is a sweep from the till to the
	// organization's settlement bank account.
	CategorySettlementTransfer Category = "settlement-transfer"
	// CategoryMerchantCharge is a provider fee, aggregated per day on export.
	CategoryMerchantCharge Category = "merchant-charge"
	// CategoryOtherWithdrawal is any other debit from the till.
	CategoryOtherWithdrawal Category = "other-withdrawal"
	// CategoryUnclassified produces no ledger entry.
	CategoryUnclassified Category = "unclassified"
)

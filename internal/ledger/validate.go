package ledger

import (
	"fmt"

	"github.com/tillworks/qbtill/internal/model"
)

// ValidationError describes one entry violating a ledger invariant.
type ValidationError struct {
	Index       int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("entry %d: %s", e.Index, e.Description)
}

// Validate checks invariants over generated entries before serialization:
// every entry balances, and every entry names both accounts.
func Validate(entries []model.LedgerEntry) []ValidationError {
	var errs []ValidationError
	for i, e := range entries {
		if !e.Balanced() {
			errs = append(errs, ValidationError{Index: i, Description: "transaction and split amounts do not sum to zero"})
		}
		if e.Account == "" || e.SplitAccount == "" {
			errs = append(errs, ValidationError{Index: i, Description: "entry is missing an account name"})
		}
	}
	return errs
}

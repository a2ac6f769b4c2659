package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single ledger entry (a debit or a credit).
// Transactions are append-only: once written they are never updated or deleted.
type Transaction struct {
	Date       time.Time
	CreatedAt  time.Time
	TransferID *string
	ID         string
	AccountID  string
	Name       string
	Currency   string
	Amount     decimal.Decimal
}

// IsDebit reports whether the entry removes funds from its account.
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit reports whether the entry adds funds to its account.
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

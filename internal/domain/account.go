package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind is the type of an account.
type AccountKind string

const (
	KindChecking AccountKind = "checking"
	KindSavings  AccountKind = "savings"
)

// IsValid checks if the kind is a supported account type.
func (k AccountKind) IsValid() bool {
	return k == KindChecking || k == KindSavings
}

// Account represents a customer-owned account that holds a balance.
// Currency is fixed at creation time for all transactions on the account.
type Account struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ID         string
	CustomerID string
	Name       string
	Kind       AccountKind
	Currency   string
	Balance    decimal.Decimal
}

// AccountBalance is the read-side view of an account's current balance.
type AccountBalance struct {
	LastUpdated time.Time
	AccountID   string
	AccountName string
	Currency    string
	Balance     decimal.Decimal
}

// ValidateDebit checks if the account holds enough funds to be debited by amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return &InsufficientFundsError{
			AccountID: a.ID,
			Balance:   a.Balance,
			Required:  amount,
		}
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

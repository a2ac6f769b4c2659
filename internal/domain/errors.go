package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("customer with this email already exists")

	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Transfer errors
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrInvalidAmount     = errors.New("amount must be positive with at most 2 decimal places")
	ErrCurrencyMismatch  = errors.New("cannot transfer between different currencies")
	ErrTransferNotFound  = errors.New("transfer not found")
	ErrCorruptedTransfer = errors.New("transfer is corrupted")
	ErrTransferFailed    = errors.New("transfer failed")
	ErrBusy              = errors.New("accounts are busy, retry the transfer")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
)

// InsufficientFundsError reports a rejected debit with the balance that was
// available and the amount that was required.
type InsufficientFundsError struct {
	AccountID string
	Balance   decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account %s: balance %s, required %s",
		e.AccountID, e.Balance, e.Required)
}

// Is makes the typed error match ErrInsufficientFunds in errors.Is checks.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// AccountNotFoundError identifies which side of an operation named a
// missing account.
type AccountNotFoundError struct {
	AccountID string
	Side      string
}

func (e *AccountNotFoundError) Error() string {
	if e.Side == "" {
		return fmt.Sprintf("account %s not found", e.AccountID)
	}
	return fmt.Sprintf("%s account %s not found", e.Side, e.AccountID)
}

// Is makes the typed error match ErrAccountNotFound in errors.Is checks.
func (e *AccountNotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}

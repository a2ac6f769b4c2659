package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transfer is the derived view of one funds movement: the two ledger
// entries that share a transfer-group ID. It is never stored directly.
type Transfer struct {
	Debit       *Transaction
	Credit      *Transaction
	TransferID  string
	TotalAmount decimal.Decimal
}

// TransferResult describes the two entries created by a successful transfer.
type TransferResult struct {
	TransferID        string
	FromTransactionID string
	ToTransactionID   string
	FromAccountID     string
	ToAccountID       string
	Amount            decimal.Decimal
}

// BuildTransfer assembles the derived view from the entries sharing one
// transfer-group ID. Exactly two entries with negated amounts must exist;
// anything else means the ledger invariant was violated outside the engine.
func BuildTransfer(transferID string, entries []*Transaction) (*Transfer, error) {
	if len(entries) == 0 {
		return nil, ErrTransferNotFound
	}

	if len(entries) != 2 {
		return nil, fmt.Errorf("%w: expected 2 entries for transfer %s, found %d",
			ErrCorruptedTransfer, transferID, len(entries))
	}

	var debit, credit *Transaction
	for _, e := range entries {
		switch {
		case e.IsDebit():
			debit = e
		case e.IsCredit():
			credit = e
		}
	}

	if debit == nil || credit == nil || !debit.Amount.Add(credit.Amount).IsZero() {
		return nil, fmt.Errorf("%w: entries for transfer %s do not form a debit/credit pair",
			ErrCorruptedTransfer, transferID)
	}

	return &Transfer{
		TransferID:  transferID,
		Debit:       debit,
		Credit:      credit,
		TotalAmount: credit.Amount,
	}, nil
}

// DebitDescription is the default description for the debit leg when the
// caller supplies none, naming the receiving account.
func DebitDescription(toAccountName string) string {
	return "Transfer to " + toAccountName
}

// CreditDescription is the default description for the credit leg when the
// caller supplies none, naming the sending account.
func CreditDescription(fromAccountName string) string {
	return "Transfer from " + fromAccountName
}

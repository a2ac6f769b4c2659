package usecase

import (
	"context"
	"time"

	"github.com/meowfi/ledger/internal/domain"
)

// TransactionUseCase handles the read side of the ledger.
type TransactionUseCase struct {
	txnRepo     TransactionRepository
	accountRepo AccountRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(txnRepo TransactionRepository, accountRepo AccountRepository) *TransactionUseCase {
	return &TransactionUseCase{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// ListTransactionsInput represents input for listing an account's entries.
type ListTransactionsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	AccountID string
	Limit     int
	Offset    int
}

// ListTransactions lists an account's ledger entries, most recent first.
// Date bounds are inclusive.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.txnRepo.ListByAccount(ctx, input.AccountID, ListTransactionsFilter{
		Limit:     limit,
		Offset:    offset,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
}

// GetTransaction retrieves a single ledger entry by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txnRepo.GetByID(ctx, id)
}

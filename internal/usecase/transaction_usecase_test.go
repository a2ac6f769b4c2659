package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/usecase"
	"github.com/meowfi/ledger/internal/usecase/mocks"
)

func TestTransactionUseCase_ListTransactions(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewTransactionUseCase(txnRepo, accountRepo)

	accountRepo.Create(context.Background(), &domain.Account{ID: "acc-1"})

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		txnRepo.Create(context.Background(), nil, &domain.Transaction{
			ID:        "txn-" + string(rune('a'+i)),
			AccountID: "acc-1",
			Date:      base.AddDate(0, 0, i),
		})
	}

	t.Run("account must exist", func(t *testing.T) {
		_, err := uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{AccountID: "acc-missing"})
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("lists all", func(t *testing.T) {
		txns, err := uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{AccountID: "acc-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(txns) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(txns))
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		start := base.AddDate(0, 0, 1)
		end := base.AddDate(0, 0, 2)

		txns, err := uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{
			AccountID: "acc-1",
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(txns) != 2 {
			t.Errorf("expected 2 transactions in range, got %d", len(txns))
		}
	})
}

func TestTransactionUseCase_GetTransaction(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewTransactionUseCase(txnRepo, mocks.NewMockAccountRepository())

	txnRepo.Create(context.Background(), nil, &domain.Transaction{ID: "txn-1", AccountID: "acc-1"})

	t.Run("found", func(t *testing.T) {
		txn, err := uc.GetTransaction(context.Background(), "txn-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if txn.ID != "txn-1" {
			t.Errorf("expected txn-1, got %s", txn.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.GetTransaction(context.Background(), "txn-missing")
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

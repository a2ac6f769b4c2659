package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/infrastructure/metrics"
)

// TransferUseCase is the funds-transfer engine: it validates a transfer
// request, locks both accounts in a globally consistent order, writes the
// two ledger entries and both balance updates as one atomic unit.
type TransferUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	idGen IDGenerator,
	retrier Retrier,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// WithMetrics attaches Prometheus collectors to the use case.
func (uc *TransferUseCase) WithMetrics(m *metrics.Metrics) *TransferUseCase {
	uc.metrics = m
	return uc
}

// TransferInput represents input for a transfer between two accounts.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Description   string
	Amount        decimal.Decimal
}

// Transfer moves funds between two accounts. On success exactly two ledger
// entries exist sharing a fresh transfer-group ID, amounts negated, and both
// balances reflect the movement. On any failure no partial state is visible.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.TransferResult, error) {
	start := time.Now()

	result, err := uc.transfer(ctx, input)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferErrors.WithLabelValues(transferErrorType(err)).Inc()
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return result, nil
}

func (uc *TransferUseCase) transfer(ctx context.Context, input TransferInput) (*domain.TransferResult, error) {
	// Validation before any mutation, short-circuiting in order.
	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var result *domain.TransferResult

	err := uc.retrier.Retry(ctx, func() error {
		r, err := uc.execute(ctx, input)
		if err != nil {
			return err
		}

		result = r

		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrBusy
		}

		return nil, err
	}

	return result, nil
}

// transferErrorType buckets transfer failures for the error counter.
func transferErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return "currency_mismatch"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrBusy):
		return "busy"
	default:
		return "storage"
	}
}

func (uc *TransferUseCase) execute(ctx context.Context, input TransferInput) (*domain.TransferResult, error) {
	// Lock both account rows in sorted order (DEADLOCK PREVENTION).
	ids := []string{input.FromAccountID, input.ToAccountID}
	sort.Strings(ids)

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}
	defer tx.Rollback(ctx)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	var fromAccount, toAccount *domain.Account
	for _, a := range accounts {
		switch a.ID {
		case input.FromAccountID:
			fromAccount = a
		case input.ToAccountID:
			toAccount = a
		}
	}

	if fromAccount == nil {
		return nil, &domain.AccountNotFoundError{AccountID: input.FromAccountID, Side: "source"}
	}

	if toAccount == nil {
		return nil, &domain.AccountNotFoundError{AccountID: input.ToAccountID, Side: "destination"}
	}

	if fromAccount.Currency != toAccount.Currency {
		return nil, domain.ErrCurrencyMismatch
	}

	// Sufficiency is checked against the balance read under the lock, never
	// against a value read before locking.
	if err := fromAccount.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transferID := uc.idGen.Generate()

	debitName := input.Description
	if debitName == "" {
		debitName = domain.DebitDescription(toAccount.Name)
	}

	creditName := input.Description
	if creditName == "" {
		creditName = domain.CreditDescription(fromAccount.Name)
	}

	debit := &domain.Transaction{
		ID:         uc.idGen.Generate(),
		AccountID:  fromAccount.ID,
		Amount:     input.Amount.Neg(),
		Name:       debitName,
		Date:       now,
		TransferID: &transferID,
		Currency:   fromAccount.Currency,
		CreatedAt:  now,
	}

	credit := &domain.Transaction{
		ID:         uc.idGen.Generate(),
		AccountID:  toAccount.ID,
		Amount:     input.Amount,
		Name:       creditName,
		Date:       now,
		TransferID: &transferID,
		Currency:   toAccount.Currency,
		CreatedAt:  now,
	}

	if err := uc.txnRepo.Create(ctx, tx, debit); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	if err := uc.txnRepo.Create(ctx, tx, credit); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, fromAccount.ID, fromAccount.ApplyDebit(input.Amount), now); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, toAccount.ID, toAccount.ApplyCredit(input.Amount), now); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	return &domain.TransferResult{
		TransferID:        transferID,
		FromTransactionID: debit.ID,
		ToTransactionID:   credit.ID,
		FromAccountID:     fromAccount.ID,
		ToAccountID:       toAccount.ID,
		Amount:            input.Amount,
	}, nil
}

// GetTransfer retrieves both legs of a transfer by its transfer-group ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, transferID string) (*domain.Transfer, error) {
	entries, err := uc.txnRepo.GetByTransferID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	return domain.BuildTransfer(transferID, entries)
}

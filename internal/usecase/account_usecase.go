package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo  AccountRepository
	customerRepo CustomerRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, customerRepo CustomerRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		idGen:        idGen,
	}
}

// WithMetrics attaches Prometheus collectors to the use case.
func (uc *AccountUseCase) WithMetrics(m *metrics.Metrics) *AccountUseCase {
	uc.metrics = m
	return uc
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	CustomerID     string
	Name           string
	Kind           domain.AccountKind
	Currency       string
	InitialBalance decimal.Decimal
}

// CreateAccount creates a new account for an existing customer. The opening
// balance must be positive; the currency is fixed for the account's lifetime.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if !input.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAccountKind, input.Kind)
	}

	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.InitialBalance); err != nil {
		return nil, err
	}

	if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:         uc.idGen.Generate(),
		CustomerID: input.CustomerID,
		Name:       input.Name,
		Kind:       input.Kind,
		Currency:   input.Currency,
		Balance:    input.InitialBalance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetBalance returns the current balance view of an account.
func (uc *AccountUseCase) GetBalance(ctx context.Context, id string) (*domain.AccountBalance, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.AccountBalance{
		AccountID:   account.ID,
		AccountName: account.Name,
		Balance:     account.Balance,
		Currency:    account.Currency,
		LastUpdated: account.UpdatedAt,
	}, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.accountRepo.List(ctx, limit, offset)
}

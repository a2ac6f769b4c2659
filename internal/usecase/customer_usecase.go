package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/infrastructure/metrics"
)

// CustomerUseCase handles customer business logic.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	accountRepo  AccountRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, accountRepo AccountRepository, idGen IDGenerator) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		idGen:        idGen,
	}
}

// WithMetrics attaches Prometheus collectors to the use case.
func (uc *CustomerUseCase) WithMetrics(m *metrics.Metrics) *CustomerUseCase {
	uc.metrics = m
	return uc
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// CreateCustomer creates a new customer. Email must be unique.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}

	if err := domain.ValidateName(input.FirstName); err != nil {
		return nil, err
	}

	if err := domain.ValidateName(input.LastName); err != nil {
		return nil, err
	}

	existing, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	now := time.Now().UTC()

	customer := &domain.Customer{
		ID:          uc.idGen.Generate(),
		Email:       email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The unique index still backstops concurrent creations with the same
	// email; the repo maps that violation to ErrDuplicateEmail.
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CustomersCreated.Inc()
	}

	return customer, nil
}

// CustomerDetail is a customer together with the accounts it owns.
type CustomerDetail struct {
	Customer *domain.Customer
	Accounts []*domain.Account
}

// GetCustomer retrieves a customer and its accounts.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*CustomerDetail, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{Customer: customer, Accounts: accounts}, nil
}

// ListCustomersInput represents input for listing customers.
type ListCustomersInput struct {
	Limit  int
	Offset int
}

// ListCustomers lists customers with pagination.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, input ListCustomersInput) ([]*domain.Customer, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.customerRepo.List(ctx, limit, offset)
}

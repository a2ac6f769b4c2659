package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/usecase"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          c.ID,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// CustomerDetailResponse is a customer together with its accounts.
type CustomerDetailResponse struct {
	Customer *CustomerResponse  `json:"customer"`
	Accounts []*AccountResponse `json:"accounts"`
}

// CustomerDetailFromUseCase converts a use case customer detail to a response.
func CustomerDetailFromUseCase(d *usecase.CustomerDetail) *CustomerDetailResponse {
	return &CustomerDetailResponse{
		Customer: CustomerFromDomain(d.Customer),
		Accounts: AccountsFromDomain(d.Accounts),
	}
}

// ListCustomersResponse wraps a customer listing.
type ListCustomersResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int64               `json:"total"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Currency   string          `json:"currency"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Name:       a.Name,
		Kind:       string(a.Kind),
		Currency:   a.Currency,
		Balance:    a.Balance,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// BalanceResponse represents the current balance view of an account.
type BalanceResponse struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	LastUpdated time.Time       `json:"last_updated"`
}

// BalanceFromDomain converts a domain balance view to a response.
func BalanceFromDomain(b *domain.AccountBalance) *BalanceResponse {
	return &BalanceResponse{
		AccountID:   b.AccountID,
		AccountName: b.AccountName,
		Balance:     b.Balance,
		Currency:    b.Currency,
		LastUpdated: b.LastUpdated,
	}
}

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"account_id"`
	TransferID *string         `json:"transfer_id,omitempty"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:         t.ID,
		AccountID:  t.AccountID,
		TransferID: t.TransferID,
		Name:       t.Name,
		Amount:     t.Amount,
		Currency:   t.Currency,
		Date:       t.Date,
		CreatedAt:  t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// TransferResultResponse describes the outcome of a successful transfer.
type TransferResultResponse struct {
	TransferID        string          `json:"transfer_id"`
	FromTransactionID string          `json:"from_transaction_id"`
	ToTransactionID   string          `json:"to_transaction_id"`
	FromAccountID     string          `json:"from_account_id"`
	ToAccountID       string          `json:"to_account_id"`
	Amount            decimal.Decimal `json:"amount"`
}

// TransferResultFromDomain converts a domain transfer result to a response.
func TransferResultFromDomain(r *domain.TransferResult) *TransferResultResponse {
	return &TransferResultResponse{
		TransferID:        r.TransferID,
		FromTransactionID: r.FromTransactionID,
		ToTransactionID:   r.ToTransactionID,
		FromAccountID:     r.FromAccountID,
		ToAccountID:       r.ToAccountID,
		Amount:            r.Amount,
	}
}

// TransferResponse represents both legs of a completed transfer.
type TransferResponse struct {
	TransferID  string               `json:"transfer_id"`
	Debit       *TransactionResponse `json:"debit"`
	Credit      *TransactionResponse `json:"credit"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
}

// TransferFromDomain converts a domain transfer view to a response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	return &TransferResponse{
		TransferID:  t.TransferID,
		Debit:       TransactionFromDomain(t.Debit),
		Credit:      TransactionFromDomain(t.Credit),
		TotalAmount: t.TotalAmount,
	}
}

// ConsistencyResponse reports the outcome of a ledger consistency check.
type ConsistencyResponse struct {
	Consistent bool   `json:"consistent"`
	Detail     string `json:"detail,omitempty"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

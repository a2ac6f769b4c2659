package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/meowfi/ledger/internal/adapter/http/dto"
	"github.com/meowfi/ledger/internal/adapter/http/handler"
	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/usecase"
	"github.com/meowfi/ledger/internal/usecase/mocks"
)

// newTestRouter wires the full API surface over in-memory repositories.
func newTestRouter(t *testing.T) (nethttp.Handler, *mocks.MockAccountRepository) {
	t.Helper()

	customerRepo := mocks.NewMockCustomerRepository()
	accountRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	ledgerRepo := mocks.NewMockLedgerRepository()
	idGen := mocks.NewMockIDGenerator()

	customerUC := usecase.NewCustomerUseCase(customerRepo, accountRepo, idGen)
	accountUC := usecase.NewAccountUseCase(accountRepo, customerRepo, idGen)
	txnUC := usecase.NewTransactionUseCase(txnRepo, accountRepo)
	transferUC := usecase.NewTransferUseCase(mocks.NewMockTransactionManager(), accountRepo, txnRepo, idGen, mocks.NopRetrier{})
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	router := NewRouter(RouterConfig{
		CustomerHandler:    handler.NewCustomerHandler(customerUC),
		AccountHandler:     handler.NewAccountHandler(accountUC),
		TransactionHandler: handler.NewTransactionHandler(txnUC),
		TransferHandler:    handler.NewTransferHandler(transferUC),
		LedgerHandler:      handler.NewLedgerHandler(ledgerUC),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		Logger:             zerolog.Nop(),
	})

	return router, accountRepo
}

func doJSON(t *testing.T, router nethttp.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Liveness(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, nethttp.MethodGet, "/health", nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, nethttp.MethodGet, "/metrics", nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_CustomerAccountTransferFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	// Create a customer.
	rec := doJSON(t, router, nethttp.MethodPost, "/api/v1/customers", dto.CreateCustomerRequest{
		Email:     "jo@example.com",
		FirstName: "Jo",
		LastName:  "Meow",
	})
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create customer: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var customer dto.CustomerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}

	// Open two accounts.
	accountIDs := make([]string, 0, 2)
	for _, name := range []string{"Everyday", "Rainy Day"} {
		rec = doJSON(t, router, nethttp.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
			CustomerID:     customer.ID,
			Name:           name,
			Kind:           "checking",
			Currency:       "USD",
			InitialBalance: decimal.RequireFromString("100.00"),
		})
		if rec.Code != nethttp.StatusCreated {
			t.Fatalf("create account: expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var account dto.AccountResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &account); err != nil {
			t.Fatalf("decode account: %v", err)
		}
		accountIDs = append(accountIDs, account.ID)
	}

	// Transfer between them.
	rec = doJSON(t, router, nethttp.MethodPost, "/api/v1/transfers", dto.CreateTransferRequest{
		FromAccountID: accountIDs[0],
		ToAccountID:   accountIDs[1],
		Amount:        decimal.RequireFromString("30.00"),
	})
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("transfer: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var result dto.TransferResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode transfer: %v", err)
	}

	// Both legs are visible through the transfer-group view.
	rec = doJSON(t, router, nethttp.MethodGet, "/api/v1/transfers/"+result.TransferID, nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("get transfer: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var transfer dto.TransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &transfer); err != nil {
		t.Fatalf("decode transfer view: %v", err)
	}
	if !transfer.Debit.Amount.Equal(decimal.RequireFromString("-30")) || !transfer.Credit.Amount.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("unexpected legs: debit=%s credit=%s", transfer.Debit.Amount, transfer.Credit.Amount)
	}

	// Balances moved.
	rec = doJSON(t, router, nethttp.MethodGet, "/api/v1/accounts/"+accountIDs[0]+"/balance", nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("get balance: expected 200, got %d", rec.Code)
	}

	var balance dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &balance); err != nil {
		t.Fatalf("decode balance: %v", err)
	}
	if !balance.Balance.Equal(decimal.RequireFromString("70")) {
		t.Fatalf("expected balance 70, got %s", balance.Balance)
	}

	// The debit leg shows up in the account's history.
	rec = doJSON(t, router, nethttp.MethodGet, "/api/v1/accounts/"+accountIDs[0]+"/transactions", nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("list transactions: expected 200, got %d", rec.Code)
	}

	var txns dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &txns); err != nil {
		t.Fatalf("decode transactions: %v", err)
	}
	if len(txns.Transactions) != 1 || txns.Transactions[0].ID != result.FromTransactionID {
		t.Fatalf("unexpected history: %+v", txns)
	}
}

func TestRouter_TransferValidation(t *testing.T) {
	router, accountRepo := newTestRouter(t)

	accountRepo.Create(nil, &domain.Account{ID: "acc-1", Currency: "USD", Balance: decimal.RequireFromString("10.00")})
	accountRepo.Create(nil, &domain.Account{ID: "acc-2", Currency: "USD", Balance: decimal.RequireFromString("10.00")})

	tests := []struct {
		name string
		req  dto.CreateTransferRequest
		want int
	}{
		{
			"insufficient funds",
			dto.CreateTransferRequest{FromAccountID: "acc-1", ToAccountID: "acc-2", Amount: decimal.RequireFromString("50.00")},
			nethttp.StatusBadRequest,
		},
		{
			"same account",
			dto.CreateTransferRequest{FromAccountID: "acc-1", ToAccountID: "acc-1", Amount: decimal.RequireFromString("5.00")},
			nethttp.StatusBadRequest,
		},
		{
			"missing destination",
			dto.CreateTransferRequest{FromAccountID: "acc-1", ToAccountID: "acc-missing", Amount: decimal.RequireFromString("5.00")},
			nethttp.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, nethttp.MethodPost, "/api/v1/transfers", tt.req)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_ConsistencyEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, nethttp.MethodGet, "/api/v1/ledger/consistency", nil)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ConsistencyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Consistent {
		t.Fatal("expected consistent ledger")
	}
}

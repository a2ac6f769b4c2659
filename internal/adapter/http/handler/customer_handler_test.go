package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/meowfi/ledger/internal/adapter/http/dto"
	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/usecase"
)

type customerServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error)
	getFn    func(ctx context.Context, id string) (*usecase.CustomerDetail, error)
	listFn   func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error)
}

func (s *customerServiceStub) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
	return s.createFn(ctx, input)
}

func (s *customerServiceStub) GetCustomer(ctx context.Context, id string) (*usecase.CustomerDetail, error) {
	return s.getFn(ctx, id)
}

func (s *customerServiceStub) ListCustomers(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) {
	return s.listFn(ctx, input)
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	customer := &domain.Customer{ID: "cust-1", Email: "jo@example.com", FirstName: "Jo", LastName: "Meow"}

	var captured usecase.CreateCustomerInput
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			captured = input
			return customer, nil
		},
	})

	body, _ := json.Marshal(dto.CreateCustomerRequest{
		Email:     "jo@example.com",
		FirstName: "Jo",
		LastName:  "Meow",
	})

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Email != "jo@example.com" || captured.FirstName != "Jo" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.CustomerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "cust-1" {
		t.Fatalf("expected customer ID cust-1, got %s", resp.ID)
	}
}

func TestCustomerHandler_Create_DuplicateEmail(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			return nil, domain.ErrDuplicateEmail
		},
	})

	body, _ := json.Marshal(dto.CreateCustomerRequest{Email: "jo@example.com", FirstName: "Jo", LastName: "Meow"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestCustomerHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatal("CreateCustomer should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerHandler_Get(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		getFn: func(ctx context.Context, id string) (*usecase.CustomerDetail, error) {
			if id != "cust-1" {
				t.Fatalf("expected id cust-1, got %s", id)
			}
			return &usecase.CustomerDetail{
				Customer: &domain.Customer{ID: "cust-1", FirstName: "Jo"},
				Accounts: []*domain.Account{{ID: "acc-1", CustomerID: "cust-1"}},
			}, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/customers/cust-1", nil), "id", "cust-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.CustomerDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Customer.ID != "cust-1" || len(resp.Accounts) != 1 {
		t.Fatalf("unexpected detail response: %+v", resp)
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		getFn: func(ctx context.Context, id string) (*usecase.CustomerDetail, error) {
			return nil, domain.ErrCustomerNotFound
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/customers/cust-1", nil), "id", "cust-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCustomerHandler_List(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		listFn: func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) {
			if input.Limit != 5 || input.Offset != 2 {
				t.Fatalf("expected limit=5 offset=2, got %+v", input)
			}
			return []*domain.Customer{{ID: "cust-1"}, {ID: "cust-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/customers?limit=5&offset=2", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListCustomersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(resp.Customers))
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

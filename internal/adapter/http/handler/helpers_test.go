package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meowfi/ledger/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"customer not found", domain.ErrCustomerNotFound, http.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"typed account not found", &domain.AccountNotFoundError{AccountID: "acc-1", Side: "source"}, http.StatusNotFound},
		{"transfer not found", domain.ErrTransferNotFound, http.StatusNotFound},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusConflict},
		{"same account", domain.ErrSameAccount, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"currency mismatch", domain.ErrCurrencyMismatch, http.StatusBadRequest},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest},
		{"typed insufficient funds", &domain.InsufficientFundsError{AccountID: "acc-1"}, http.StatusBadRequest},
		{"busy", domain.ErrBusy, http.StatusServiceUnavailable},
		{"corrupted transfer", domain.ErrCorruptedTransfer, http.StatusInternalServerError},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseTimeQuery(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?start_date=2025-06-01", nil)

		got := parseTimeQuery(req, "start_date")
		if got == nil || !got.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected 2025-06-01, got %v", got)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?end_date=2025-06-01T12:30:00Z", nil)

		got := parseTimeQuery(req, "end_date")
		if got == nil || got.Hour() != 12 {
			t.Fatalf("expected 12:30, got %v", got)
		}
	})

	t.Run("missing or malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?end_date=yesterday", nil)

		if got := parseTimeQuery(req, "end_date"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
		if got := parseTimeQuery(req, "start_date"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/meowfi/ledger/internal/adapter/http/dto"
	"github.com/meowfi/ledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	CheckConsistency(ctx context.Context) (bool, error)
}

// LedgerHandler handles ledger-wide HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// CheckConsistency verifies the double-entry invariants across the ledger.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	ok, err := h.ledgerUC.CheckConsistency(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) {
			writeJSON(w, http.StatusOK, dto.ConsistencyResponse{
				Consistent: false,
				Detail:     err.Error(),
			})

			return
		}

		writeError(w, http.StatusInternalServerError, "consistency check failed", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: ok})
}

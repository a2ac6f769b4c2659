package usecase

import (
	"context"
	"errors"

	"github.com/meowfi/ledger/internal/infrastructure/metrics"
)

var (
	// ErrInconsistentLedger is returned when the ledger is not balanced.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: debits do not equal credits")
)

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
	metrics    *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// WithMetrics attaches Prometheus collectors to the use case.
func (uc *LedgerUseCase) WithMetrics(m *metrics.Metrics) *LedgerUseCase {
	uc.metrics = m
	return uc
}

// CheckConsistency verifies the double-entry invariants across the whole
// ledger: transfer entries sum to zero and every transfer-group has exactly
// two entries. A violation here means something wrote to the store outside
// the transfer engine.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	totalAmount, unpairedGroups, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		uc.countCheck("error")
		return false, err
	}

	if !totalAmount.IsZero() || unpairedGroups != 0 {
		uc.countCheck("inconsistent")
		return false, ErrInconsistentLedger
	}

	uc.countCheck("consistent")

	return true, nil
}

func (uc *LedgerUseCase) countCheck(result string) {
	if uc.metrics != nil {
		uc.metrics.ConsistencyChecks.WithLabelValues(result).Inc()
	}
}

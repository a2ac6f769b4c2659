package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CheckConsistency returns the sum of all transfer entry amounts and the
// number of transfer groups without exactly two entries. A balanced ledger
// reports a zero sum and zero unpaired groups.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, int64, error) {
	var total pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE transfer_id IS NOT NULL`).Scan(&total)
	if err != nil {
		return decimal.Zero, 0, err
	}

	var unpaired int64

	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM (
			SELECT transfer_id
			FROM transactions
			WHERE transfer_id IS NOT NULL
			GROUP BY transfer_id
			HAVING COUNT(*) <> 2
		) groups`).Scan(&unpaired)
	if err != nil {
		return decimal.Zero, 0, err
	}

	return numericToDecimal(total), unpaired, nil
}

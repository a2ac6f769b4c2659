package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meowfi/ledger/internal/domain"
	"github.com/meowfi/ledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. Ledger
// entries are append-only, so the repository only inserts and reads.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, account_id, transfer_id, name, amount, currency, date, created_at`

// Create inserts a ledger entry within a transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := unwrapTx(tx)

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		txn.ID,
		txn.AccountID,
		txn.TransferID,
		txn.Name,
		decimalToNumeric(txn.Amount),
		txn.Currency,
		timeToPgTimestamptz(txn.Date),
		timeToPgTimestamptz(txn.CreatedAt),
	)

	return err
}

// GetByID retrieves a ledger entry by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1`, id)

	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// ListByAccount lists entries for an account, newest first. Date bounds
// are inclusive.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, filter usecase.ListTransactionsFilter) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1`
	args := []any{accountID}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}

	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}

	args = append(args, filter.Limit, filter.Offset)
	query += ` ORDER BY date DESC, id DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// GetByTransferID retrieves both legs of a transfer.
func (r *TransactionRepository) GetByTransferID(ctx context.Context, transferID string) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE transfer_id = $1
		ORDER BY amount`, transferID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	txns := make([]*domain.Transaction, 0)

	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn    domain.Transaction
		amount pgtype.Numeric
	)

	err := row.Scan(
		&txn.ID,
		&txn.AccountID,
		&txn.TransferID,
		&txn.Name,
		&amount,
		&txn.Currency,
		&txn.Date,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Amount = numericToDecimal(amount)

	return &txn, nil
}

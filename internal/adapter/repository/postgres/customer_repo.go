package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meowfi/ledger/internal/domain"
)

const pgErrUniqueViolation = "23505"

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create creates a new customer. A unique violation on the email column is
// mapped to domain.ErrDuplicateEmail.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, first_name, last_name, email, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.PhoneNumber,
		timeToPgTimestamptz(customer.CreatedAt),
		timeToPgTimestamptz(customer.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateEmail
		}

		return err
	}

	return nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone_number, created_at, updated_at
		FROM customers
		WHERE id = $1`, id)

	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	return customer, nil
}

// GetByEmail retrieves a customer by email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone_number, created_at, updated_at
		FROM customers
		WHERE email = $1`, email)

	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	return customer, nil
}

// List lists customers with pagination.
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, phone_number, created_at, updated_at
		FROM customers
		ORDER BY id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)

	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer

	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

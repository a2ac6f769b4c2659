package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds a transfer's database transaction,
	// including the wait for account row locks. Expiry surfaces as a
	// retryable busy error instead of blocking indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)

package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidAccountKind = errors.New("invalid account kind")
)

// Validation constants
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 200
	MaxPhoneLength       = 20
)

var (
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateName validates a customer or account display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateCurrency validates a 3-letter uppercase currency code.
func ValidateCurrency(currency string) error {
	if !currencyRegex.MatchString(currency) {
		return fmt.Errorf("%w: %q must be a 3-letter uppercase code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateAmount validates a transfer amount: strictly positive and
// representable with at most 2 decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: %s has more than 2 decimal places", ErrInvalidAmount, amount)
	}

	return nil
}

// ValidatePagination clamps pagination parameters to safe bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const (
		defaultPageSize = 100
		maxPageSize     = 1000
	)

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

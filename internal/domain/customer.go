package domain

import (
	"strings"
	"time"
)

// Customer represents a person who can own accounts.
type Customer struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ID          string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

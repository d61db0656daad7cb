package ports

import (
	"context"

	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Upsert inserts the customer or updates the name stored for its phone.
	Upsert(ctx context.Context, c *customer.Customer) error

	// Get retrieves a customer by phone.
	Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)
}

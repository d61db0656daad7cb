package ports

import (
	"context"

	"orderbot/internal/core/domain/services/taste"
)

// TasteReader exposes the order history in the shapes the recommendation engine consumes.
type TasteReader interface {
	// CustomerTasteTable returns one taste profile row per customer with at least
	// one order line, keyed by the customer's phone.
	CustomerTasteTable(ctx context.Context) (*taste.Table, error)

	// DishUsage returns per (customer, dish, price) line counts together with each
	// customer's order count. A nil customers slice means every customer.
	DishUsage(ctx context.Context, customers []string) ([]taste.Usage, error)
}

// Package ports defines the persistence contracts of the ordering assistant.
// These interfaces establish contracts between the core and the storage adapters,
// enabling dependency inversion and testability.
//
// Every adapter reports a failing store with errs.StoreUnavailableError and a
// missing row with errs.ObjectNotFoundError, so callers can tell both apart from
// a legitimately empty result.
package ports

import (
	"context"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderRepository defines the persistence contract for order aggregates and their lines.
type OrderRepository interface {
	// NextNumber allocates the next order number. Allocation is atomic: concurrent
	// callers never receive the same number, and numbers grow by one from the
	// highest number ever stored.
	NextNumber(ctx context.Context) (order.Number, error)

	// Add persists a new order. The number must come from NextNumber.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order, i.e. its remark.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by number.
	Get(ctx context.Context, number order.Number) (*order.Order, error)

	// AddLine upserts a line on (order, dish). An existing line has its quantity
	// increased by the new line's quantity.
	AddLine(ctx context.Context, line order.Line) error

	// DeleteLine removes the order's line for dish and reports whether one existed.
	DeleteLine(ctx context.Context, number order.Number, dish int64) (bool, error)

	// Lines lists the order's lines joined with their dishes, in insertion order.
	Lines(ctx context.Context, number order.Number) ([]order.CartItem, error)

	// Total sums price × quantity over the order's lines. The second result is
	// false when the order has no lines.
	Total(ctx context.Context, number order.Number) (decimal.Decimal, bool, error)

	// CountForCustomer returns how many orders the customer has ever opened.
	CountForCustomer(ctx context.Context, customer kernel.Phone) (int, error)
}

package queries

import (
	"errors"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery reads the current content of an order.
type GetCartQuery struct {
	number order.Number
	guard  guard.ConstructorGuard
}

// NewGetCartQuery creates the query for an order.
func NewGetCartQuery(number order.Number) (GetCartQuery, error) {
	if err := number.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Number returns the order number.
func (q GetCartQuery) Number() order.Number {
	return q.number
}

// GetCartQueryResponse is the cart as reviewed by the customer.
type GetCartQueryResponse struct {
	Items []order.CartItem
	// Total is meaningful only when HasTotal is set, i.e. the cart has lines.
	Total    decimal.Decimal
	HasTotal bool
	Remark   string
}

// IsEmpty reports whether the cart has no lines.
func (r GetCartQueryResponse) IsEmpty() bool {
	return len(r.Items) == 0
}

// Contains reports whether dish is in the cart.
func (r GetCartQueryResponse) Contains(dish string) bool {
	for _, item := range r.Items {
		if item.DishName == dish {
			return true
		}
	}
	return false
}

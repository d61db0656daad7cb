package queries

import (
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/guard"
)

var (
	ErrGetOrderAgentQueryIsNotConstructed = errors.New(
		"GetOrderAgentQuery must be created via NewGetOrderAgentQuery constructor",
	)
)

// GetOrderAgentQuery looks up the delivery agent stored on an order.
type GetOrderAgentQuery struct {
	number order.Number
	guard  guard.ConstructorGuard
}

// NewGetOrderAgentQuery creates the query.
func NewGetOrderAgentQuery(number order.Number) (GetOrderAgentQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderAgentQuery{}, err
	}
	return GetOrderAgentQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderAgentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAgentQueryIsNotConstructed)
}

// Number returns the order number.
func (q GetOrderAgentQuery) Number() order.Number {
	return q.number
}

// GetOrderAgentQueryResponse is the contact the customer is given.
type GetOrderAgentQueryResponse struct {
	Name  string
	Phone kernel.Phone
}

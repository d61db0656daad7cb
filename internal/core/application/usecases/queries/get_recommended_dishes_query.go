package queries

import (
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/guard"
)

// NewCustomerOrderThreshold is the order count below which a customer has no
// usable taste history.
const NewCustomerOrderThreshold = 2

var (
	ErrGetRecommendedDishesQueryIsNotConstructed = errors.New(
		"GetRecommendedDishesQuery must be created via NewGetRecommendedDishesQuery constructor",
	)
)

// GetRecommendedDishesQuery asks for the dishes a customer is likely to enjoy.
//
// Example:
//
//	query, _ := NewGetRecommendedDishesQuery(session.Customer)
//	favorites, err := handler.Handle(ctx, query)
//	for _, f := range favorites {
//	    fmt.Printf("%s\t%s₪\n", f.Name, f.Price)
//	}
type GetRecommendedDishesQuery struct {
	customer kernel.Phone
	guard    guard.ConstructorGuard
}

// NewGetRecommendedDishesQuery creates the query for customer.
func NewGetRecommendedDishesQuery(customer kernel.Phone) (GetRecommendedDishesQuery, error) {
	if err := customer.Validate(); err != nil {
		return GetRecommendedDishesQuery{}, err
	}
	return GetRecommendedDishesQuery{customer: customer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecommendedDishesQuery) Validate() error {
	return q.guard.Validate(ErrGetRecommendedDishesQueryIsNotConstructed)
}

// Customer returns the target customer.
func (q GetRecommendedDishesQuery) Customer() kernel.Phone {
	return q.customer
}

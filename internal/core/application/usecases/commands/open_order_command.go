package commands

import (
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/guard"
)

var (
	ErrOpenOrderCommandIsNotConstructed = errors.New(
		"OpenOrderCommand must be created via NewOpenOrderCommand constructor",
	)
)

// OpenOrderCommand starts a new order for a registered customer once the
// delivery location is known.
//
// Example:
//
//	cmd, err := NewOpenOrderCommand(session.Customer, true)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Printf("order %d goes with %s", result.Number, result.Agent.Name())
type OpenOrderCommand struct { //nolint:recvcheck //using for validation
	customer kernel.Phone
	shipping bool

	guard guard.ConstructorGuard
}

// NewOpenOrderCommand creates the command for customer.
func NewOpenOrderCommand(customer kernel.Phone, shipping bool) (OpenOrderCommand, error) {
	if err := customer.Validate(); err != nil {
		return OpenOrderCommand{}, err
	}

	return OpenOrderCommand{
		customer: customer,
		shipping: shipping,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenOrderCommandIsNotConstructed)
}

// Customer returns the ordering customer's phone.
func (c OpenOrderCommand) Customer() kernel.Phone {
	return c.customer
}

// Shipping reports whether the order is delivered.
func (c OpenOrderCommand) Shipping() bool {
	return c.shipping
}

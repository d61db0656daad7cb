package commands

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var (
	ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
		"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
	)
)

// RemoveOrderLineCommand removes a dish, named as on the menu, from an order.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	number   order.Number
	dishName string

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates the command.
func NewRemoveOrderLineCommand(number order.Number, dishName string) (RemoveOrderLineCommand, error) {
	dishName = strings.TrimSpace(dishName)

	var nameErr error
	if dishName == "" {
		nameErr = errs.NewValueIsRequiredError("dish name")
	}
	if err := errors.Join(number.Validate(), nameErr); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return RemoveOrderLineCommand{
		number:   number,
		dishName: dishName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// Number returns the order number.
func (c RemoveOrderLineCommand) Number() order.Number {
	return c.number
}

// DishName returns the dish name.
func (c RemoveOrderLineCommand) DishName() string {
	return c.dishName
}

package commands

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
)

// AddOrderLineCommand puts quantity portions of a dish, named as on the menu, into an order.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	number   order.Number
	dishName string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates the command.
func NewAddOrderLineCommand(number order.Number, dishName string, quantity int) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setDishName(dishName),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// Number returns the order number.
func (c AddOrderLineCommand) Number() order.Number {
	return c.number
}

// DishName returns the dish name as shown on the menu.
func (c AddOrderLineCommand) DishName() string {
	return c.dishName
}

// Quantity returns the number of portions.
func (c AddOrderLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderLineCommand) setNumber(number order.Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}

func (c *AddOrderLineCommand) setDishName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	c.dishName = name
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity int) error {
	if err := order.ValidateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}

package order

import (
	"errors"
	"fmt"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxQuantity bounds the quantity of a single line.
const MaxQuantity = 99

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one dish inside an order. An order holds at most one line per dish.
type Line struct {
	order         Number
	dish          int64
	quantity      int
	isConstructed bool
}

// NewLine creates a validated order line.
func NewLine(order Number, dish int64, quantity int) (Line, error) {
	if err := errors.Join(
		order.Validate(),
		validateDish(dish),
		ValidateQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return Line{
		order:         order,
		dish:          dish,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// ValidateQuantity checks that quantity is within [1, MaxQuantity].
func ValidateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

func validateDish(dish int64) error {
	if dish <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dish", fmt.Errorf("%d is not greater than 0", dish))
	}
	return nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// Order returns the number of the order the line belongs to.
func (l Line) Order() Number {
	return l.order
}

// Dish returns the catalog number of the dish.
func (l Line) Dish() int64 {
	return l.dish
}

// Quantity returns the number of portions.
func (l Line) Quantity() int {
	return l.quantity
}

// Merge returns the line obtained by adding another selection of the same dish.
func (l Line) Merge(quantity int) (Line, error) {
	return NewLine(l.order, l.dish, l.quantity+quantity)
}

// CartItem is a line joined with its dish, as shown to the customer.
type CartItem struct {
	DishNumber int64
	DishName   string
	Price      kernel.Price
	Quantity   int
}

// Subtotal returns price × quantity.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Times(c.Quantity)
}

// Total sums the subtotals of items. The second result is false when items is empty.
func Total(items []CartItem) (decimal.Decimal, bool) {
	if len(items) == 0 {
		return decimal.Zero, false
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total, true
}

package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Number identifies an order. Numbers start at 1 and grow by one per allocation.
type Number int64

// Validate checks that the number was allocated, i.e. is positive.
func (n Number) Validate() error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%d is not greater than 0", n))
	}
	return nil
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Order represents a single conversation's order. It is the aggregate root for the
// lines placed by the customer.
//
// Order follows these invariants:
//   - Must have a valid allocated number
//   - Must reference a valid customer phone and a valid delivery agent phone
//   - Can only be created through NewOrder
type Order struct {
	// number is the allocated order number
	number Number

	// shipping is true for delivery orders
	shipping bool

	// customer is the phone of the customer who placed the order
	customer kernel.Phone

	// agent is the phone of the delivery agent assigned at creation
	agent kernel.Phone

	// remark is the free-text note for the kitchen, empty when unset
	remark string

	// placedAt is when the order was opened
	placedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validation.
//
// Parameters:
//   - number: Allocated order number (must be positive)
//   - shipping: Whether the order is delivered
//   - customer: Phone of the ordering customer
//   - agent: Phone of the assigned delivery agent
//   - placedAt: When the order was opened (must be set)
//
// Example:
//
//	o, err := order.NewOrder(17, true, customerPhone, agentPhone, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	number Number,
	shipping bool,
	customer kernel.Phone,
	agent kernel.Phone,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		shipping:      shipping,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomer(customer),
		o.setAgent(agent),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

// Number returns the order number.
func (o *Order) Number() Number {
	return o.number
}

// IsShipping reports whether the order is delivered to the customer.
func (o *Order) IsShipping() bool {
	return o.shipping
}

// Customer returns the ordering customer's phone.
func (o *Order) Customer() kernel.Phone {
	return o.customer
}

// Agent returns the assigned delivery agent's phone.
func (o *Order) Agent() kernel.Phone {
	return o.agent
}

// PlacedAt returns when the order was opened.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Remark returns the current remark and whether one was set.
func (o *Order) Remark() (string, bool) {
	return o.remark, o.remark != ""
}

// SetRemark replaces the order remark. Surrounding whitespace is trimmed and an
// empty result is rejected.
func (o *Order) SetRemark(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.NewValueIsRequiredError("remark")
	}
	o.remark = text
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer kernel.Phone) error {
	if err := customer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customer = customer
	return nil
}

func (o *Order) setAgent(agent kernel.Phone) error {
	if err := agent.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agent", err)
	}
	o.agent = agent
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = placedAt
	return nil
}

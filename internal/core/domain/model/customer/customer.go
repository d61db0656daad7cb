// Package customer holds the Customer entity, keyed by canonical phone.
package customer

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a person who has shared a contact with the assistant.
type Customer struct {
	phone         kernel.Phone
	name          string
	isConstructed bool
}

// NewCustomer creates a customer. An empty name is accepted: a contact without a
// first name still identifies the customer by phone.
func NewCustomer(phone kernel.Phone, name string) (*Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("phone", err)
	}

	return &Customer{
		phone:         phone,
		name:          strings.TrimSpace(name),
		isConstructed: true,
	}, nil
}

// DisplayName joins the contact's first and last name, or returns the first name
// alone when the last one is absent.
func DisplayName(first, last string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if last == "" {
		return first
	}
	if first == "" {
		return last
	}
	return first + " " + last
}

// Validate ensures the customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Phone returns the canonical phone that identifies the customer.
func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

// Name returns the display name.
func (c *Customer) Name() string {
	return c.name
}

// Rename replaces the display name, as happens when the same phone shares a new contact.
func (c *Customer) Rename(name string) {
	c.name = strings.TrimSpace(name)
}

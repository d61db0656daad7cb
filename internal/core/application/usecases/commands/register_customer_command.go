package commands

import (
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
)

// RegisterCustomerCommand records a shared contact as a customer.
//
// Example:
//
//	phone, _ := kernel.NewPhone(contact.PhoneNumber)
//	cmd, err := NewRegisterCustomerCommand(phone, customer.DisplayName(contact.FirstName, contact.LastName))
//	if err != nil {
//	    return fmt.Errorf("invalid contact: %w", err)
//	}
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	phone kernel.Phone
	name  string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates the command. The name may be empty.
func NewRegisterCustomerCommand(phone kernel.Phone, name string) (RegisterCustomerCommand, error) {
	if err := phone.Validate(); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return RegisterCustomerCommand{
		phone: phone,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Phone returns the canonical customer phone.
func (c RegisterCustomerCommand) Phone() kernel.Phone {
	return c.phone
}

// Name returns the display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

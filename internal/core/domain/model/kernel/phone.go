package kernel

import (
	"strings"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

// PhoneLength is the maximum length of a canonical phone number, "+" included.
const PhoneLength = 13

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// Phone is a canonical international phone number. Customers are keyed by it and
// orders reference delivery agents by it.
type Phone struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPhone normalizes a raw phone number as shared by the chat transport:
// a single leading "+" is enforced and only the last PhoneLength characters are kept.
//
// Example:
//
//	p, _ := kernel.NewPhone("972501234567")
//	fmt.Println(p) // +972501234567
func NewPhone(raw string) (Phone, error) {
	raw = strings.TrimLeft(strings.TrimSpace(raw), "+")
	if raw == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if strings.ContainsAny(raw, " \t\n") {
		return Phone{}, errs.NewValueIsInvalidError("phone")
	}

	value := "+" + raw
	if len(value) > PhoneLength {
		value = value[len(value)-PhoneLength:]
	}

	return Phone{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewPhone is NewPhone for trusted literals; it panics on invalid input.
func MustNewPhone(raw string) Phone {
	p, err := NewPhone(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports whether the phone was created through NewPhone.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// IsZero reports whether p is the zero value.
func (p Phone) IsZero() bool {
	return p.value == ""
}

// IsEqual compares two phones by their canonical value.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

func (p Phone) String() string {
	return p.value
}

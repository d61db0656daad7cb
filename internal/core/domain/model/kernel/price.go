package kernel

import (
	"fmt"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is a non-negative amount in the restaurant's single currency (₪).
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice validates amount and wraps it.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustNewPrice parses a decimal literal and panics when it is not a valid price.
func MustNewPrice(amount string) Price {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	p, err := NewPrice(d)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports whether the price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Times returns the amount for quantity units.
func (p Price) Times(quantity int) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(quantity)))
}

// Float64 returns the amount as a float, for feature vectors only.
func (p Price) Float64() float64 {
	return p.amount.InexactFloat64()
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.String()
}

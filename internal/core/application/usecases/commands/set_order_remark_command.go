package commands

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

// RemarkSentinel marks a free-text message as the order remark.
const RemarkSentinel = "📝"

var (
	ErrSetOrderRemarkCommandIsNotConstructed = errors.New(
		"SetOrderRemarkCommand must be created via NewSetOrderRemarkCommand constructor",
	)
)

// SetOrderRemarkCommand replaces the remark of an order.
type SetOrderRemarkCommand struct { //nolint:recvcheck //using for validation
	number order.Number
	text   string

	guard guard.ConstructorGuard
}

// NewSetOrderRemarkCommand creates the command. Every RemarkSentinel is stripped
// from text before validation.
func NewSetOrderRemarkCommand(number order.Number, text string) (SetOrderRemarkCommand, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, RemarkSentinel, ""))

	var textErr error
	if text == "" {
		textErr = errs.NewValueIsRequiredError("remark")
	}
	if err := errors.Join(number.Validate(), textErr); err != nil {
		return SetOrderRemarkCommand{}, err
	}

	return SetOrderRemarkCommand{
		number: number,
		text:   text,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderRemarkCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderRemarkCommandIsNotConstructed)
}

// Number returns the order number.
func (c SetOrderRemarkCommand) Number() order.Number {
	return c.number
}

// Text returns the remark without the sentinel.
func (c SetOrderRemarkCommand) Text() string {
	return c.text
}

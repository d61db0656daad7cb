package conversation

import (
	"fmt"

	"orderbot/internal/pkg/errs"
)

// State is the position of a conversation in the ordering flow.
// It is derived from the transitions that fired and never persisted.
type State int

const (
	// Unknown catches uninitialized sessions.
	Unknown State = iota

	// New is a fresh conversation, or one reset by the start intent.
	New

	// AwaitingContact waits for the customer to share a phone number.
	AwaitingContact

	// AwaitingLocation waits for a delivery location. The customer is known.
	AwaitingLocation

	// Browsing shows menus of an open order.
	Browsing

	// SizingDish waits for the quantity of the selected dish.
	SizingDish

	// ReviewingCart shows the cart with payment, remark and deletion options.
	ReviewingCart

	// AwaitingRemark waits for a free-text remark ending with the sentinel.
	AwaitingRemark

	// ReadyToPay waits for a payment method.
	ReadyToPay

	// Confirmed is terminal for the order: lines can no longer change.
	Confirmed
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:          "Unknown",
		New:              "New",
		AwaitingContact:  "AwaitingContact",
		AwaitingLocation: "AwaitingLocation",
		Browsing:         "Browsing",
		SizingDish:       "SizingDish",
		ReviewingCart:    "ReviewingCart",
		AwaitingRemark:   "AwaitingRemark",
		ReadyToPay:       "ReadyToPay",
		Confirmed:        "Confirmed",
	}
}

// Validate checks that s is one of the defined states other than Unknown.
func (s State) Validate() error {
	if _, ok := getStateStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// HasOpenOrder reports whether an order exists and still accepts changes.
func (s State) HasOpenOrder() bool {
	switch s {
	case Browsing, SizingDish, ReviewingCart, AwaitingRemark, ReadyToPay:
		return true
	default:
		return false
	}
}

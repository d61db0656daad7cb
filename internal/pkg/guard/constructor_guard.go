// Package guard provides the constructor guard used by commands, queries and
// aggregates to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a struct
// and call Validate before use; the zero value fails validation.
//
// Example:
//
//	var ErrAddOrderLineCommandIsNotConstructed = errors.New("...")
//
//	type AddOrderLineCommand struct {
//	    orderNumber order.Number
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c AddOrderLineCommand) Validate() error {
//	    return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

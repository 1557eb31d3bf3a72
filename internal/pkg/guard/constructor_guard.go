// Package guard provides a defensive construction check for value objects,
// entities, commands, and queries. Embedding a ConstructorGuard lets a type
// detect whether it was created through its designated constructor or left
// as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, which makes accidental `var x SomeType` usage detectable.
//
// Example:
//
//	type ReceiveItemsCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewReceiveItemsCommand(orderID kernel.UUID) (ReceiveItemsCommand, error) {
//	    // ... validation ...
//	    return ReceiveItemsCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReceiveItemsCommand) Validate() error {
//	    return c.guard.Validate(ErrReceiveItemsCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

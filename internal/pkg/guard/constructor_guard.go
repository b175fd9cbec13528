// Package guard provides ConstructorGuard, a marker embedded in commands,
// queries and aggregates to tell values built by their constructor apart
// from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
// The zero value is "not constructed".
//
// Example:
//
//	type RescheduleApplicationCommand struct {
//	    applicationID kernel.UUID
//	    guard         guard.ConstructorGuard
//	}
//
//	func (c RescheduleApplicationCommand) Validate() error {
//	    return c.guard.Validate(ErrRescheduleApplicationCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
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

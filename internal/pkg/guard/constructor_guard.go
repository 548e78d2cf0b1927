// Package guard holds ConstructorGuard, a marker embedded in value objects, commands and queries
// so that zero values can be told apart from instances built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created through a constructor.
//
// Example:
//
//	type SitTableCommand struct {
//	    tableID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c SitTableCommand) Validate() error {
//	    return c.guard.Validate(ErrSitTableCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

// Package guard provides a defensive construction check for value objects and
// entities. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so domain objects can require creation through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when a
// nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value fails Validate, which is what lets domain types
// distinguish a properly built instance from a bare struct literal.
//
// Example:
//
//	var ErrUnitNotConstructed = errors.New("Unit must be created via NewUnit")
//
//	type Unit struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewUnit(id kernel.UUID) (Unit, error) {
//	    if err := id.Validate(); err != nil {
//	        return Unit{}, err
//	    }
//	    return Unit{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (u Unit) Validate() error {
//	    return u.guard.Validate(ErrUnitNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the owning type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

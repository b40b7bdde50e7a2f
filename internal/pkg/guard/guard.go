package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies
// a nil validation error for an object that was not built via its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value object or entity as having been created
// through its designated constructor. Embedding a guard lets Validate tell a
// properly constructed instance apart from a zero value, so invariants that
// constructors enforce cannot be bypassed with a struct literal.
//
// Example:
//
//	type Fare struct {
//	    total int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewFare(total int) (Fare, error) {
//	    if total < 0 {
//	        return Fare{}, errors.New("total must be non-negative")
//	    }
//	    return Fare{total: total, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f Fare) Validate() error {
//	    return f.guard.Validate(ErrFareIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as constructed.
// Call it only from the holder's constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built via its constructor.
// For a zero-value guard it returns validationError, or
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

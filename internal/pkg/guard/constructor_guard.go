package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. It prevents direct struct initialization
// from bypassing validation rules.
//
// The guard works by maintaining an internal flag that is only set to true when
// the object is created through the proper constructor function. Any attempt to
// use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrPriceNotConstructed = errors.New("Price must be created via NewPrice")
//
//	type Price struct {
//	    value decimal.Decimal
//	    guard ConstructorGuard
//	}
//
//	func NewPrice(value decimal.Decimal) (Price, error) {
//	    if value.IsNegative() {
//	        return Price{}, errors.New("price cannot be negative")
//	    }
//	    return Price{
//	        value: value,
//	        guard: NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceNotConstructed)
//	}
//
// Benefits:
//   - Prevents accidental use of zero values
//   - Enforces constructor usage for proper initialization
//   - Maintains domain invariants
//   - Provides clear error messages for invalid construction
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a new ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain objects
// to ensure they can be distinguished from zero-value instances.
//
// Returns:
//   - A ConstructorGuard with isConstructed set to true
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value (not through the constructor),
// this method returns the provided validation error. If validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
//
// Parameters:
//   - validationError: The error to return if the object was not properly constructed
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and object not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

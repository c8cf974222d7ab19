// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value, keeping domain invariants intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; only NewConstructorGuard produces a passing guard.
//
// Example usage:
//
//	var ErrItemNotConstructed = errors.New("Item must be created via NewItem")
//
//	type Item struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewItem(code string) (Item, error) {
//	    if code == "" {
//	        return Item{}, errors.New("code is required")
//	    }
//	    return Item{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call this in the constructor of domain objects so they can be distinguished
// from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns nil for properly constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

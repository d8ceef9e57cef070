// Package guard provides a defensive construction marker for domain objects.
//
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was built through its designated constructor or left as a zero
// value, so that invariants validated in the constructor cannot be bypassed
// by direct struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; only NewConstructorGuard produces a passing guard.
//
// Example:
//
//	var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")
//
//	type Actor struct {
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewActor(id int64) Actor {
//	    return Actor{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (a Actor) Validate() error {
//	    return a.guard.Validate(ErrActorIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as built
// through its constructor.
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

package kernel

import (
	"errors"
	"fmt"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies an already-authenticated caller: its user id and role.
//
// Authentication happens upstream (token validation, session handling); the
// core never reads ambient security state. Every operation that touches a
// specific resource receives an Actor explicitly and screens it through the
// access guard before acting.
//
// Example:
//
//	actor, err := kernel.NewActor(42, kernel.RoleClient)
//	if err != nil {
//	    return err
//	}
//	if err := accessGuard.Authorize(actor, invoice.OwnerID()); err != nil {
//	    return err
//	}
type Actor struct {
	id   int64
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an authenticated caller's id and role.
// The id must be positive and the role must be valid.
func NewActor(id int64, role Role) (Actor, error) {
	if id <= 0 {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause(
			"actorId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the caller's user id.
func (a Actor) ID() int64 {
	return a.id
}

// Role returns the caller's role.
func (a Actor) Role() Role {
	return a.role
}

package services

import (
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// AccessGuard decides whether an actor may touch a resource owned by some
// user. Operators and admins may touch anything; clients only what they own.
//
// The guard never conflates authorization with existence: callers load the
// resource first, so an unknown id surfaces as not-found regardless of who
// asks, and a known id owned by someone else surfaces as forbidden.
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard instance.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// Authorize checks that the actor may act on a resource owned by ownerID.
func (g AccessGuard) Authorize(actor kernel.Actor, ownerID int64) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role().IsElevated() {
		return nil
	}
	if actor.ID() == ownerID {
		return nil
	}

	return errs.NewAccessForbiddenError("not resource owner")
}

// RequireElevated checks that the actor holds the operator or admin role.
func (g AccessGuard) RequireElevated(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.Role().IsElevated() {
		return errs.NewAccessForbiddenError(
			fmt.Sprintf("role %s lacks operator privileges", actor.Role()),
		)
	}
	return nil
}

// Package user contains the account aggregate. Users own parcels, shipments
// and invoices; their role drives the access guard's decisions.
package user

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account that owns billed items. Authentication lives outside
// this service; users arrive here already identified.
type User struct {
	id    int64
	name  string
	email string
	role  kernel.Role

	isConstructed bool
}

// NewUser creates a user pending its database identity.
func NewUser(name, email string, role kernel.Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id int64, name, email string, role kernel.Role) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"userId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}

	u, err := NewUser(name, email, role)
	if err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's persistent identity.
func (u *User) ID() int64 { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Role returns the user's role.
func (u *User) Role() kernel.Role { return u.role }

// Actor converts the user into the access-control view of itself.
func (u *User) Actor() (kernel.Actor, error) {
	return kernel.NewActor(u.id, u.role)
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

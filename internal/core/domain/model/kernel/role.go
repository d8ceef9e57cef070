package kernel

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// Role represents the authorization level of a caller.
//
// Clients own resources and may only touch their own; operators run the
// warehouse workflows (weigh-in, payment verification); admins hold the same
// blanket access as operators. Role is a value object persisted and
// transported as a string so that new roles can be added without schema
// changes.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleClient is an end user who owns parcels, shipments and invoices.
	RoleClient

	// RoleOperator is warehouse staff entitled to every resource and to the
	// operator-only settlement transitions.
	RoleOperator

	// RoleAdmin has the same blanket resource access as RoleOperator.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleClient:   "CLIENT",
		RoleOperator: "OPERATOR",
		RoleAdmin:    "ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleClient:   "CLIENT",
		RoleOperator: "OPERATOR",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses a role from its wire/storage representation.
// Matching is case-insensitive; legacy records stored lower-case roles.
func RoleFromString(s string) (Role, error) {
	upper := strings.ToUpper(s)
	for role, str := range getValidRoleStrings() {
		if str == upper {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the role is one of the defined valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// IsElevated reports whether the role carries blanket access to every
// resource regardless of ownership.
func (r Role) IsElevated() bool {
	return r == RoleOperator || r == RoleAdmin
}

// String returns the canonical upper-case name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

package payment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──┬──> Verified
//	          └──> Rejected
//
// A payment is created pending and settled exactly once by an operator
// decision. Both outcomes are terminal. Status is persisted as a string.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every submitted payment.
	StatusPending

	// StatusVerified indicates an operator confirmed the funds. Terminal.
	StatusVerified

	// StatusRejected indicates an operator rejected the payment. Terminal.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		StatusPending:  "PENDING",
		StatusVerified: "VERIFIED",
		StatusRejected: "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "PENDING",
		StatusVerified: "VERIFIED",
		StatusRejected: "REJECTED",
	}
}

// StatusFromString parses a persisted status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks that the status is one of the defined valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Verify transitions the status to Verified.
// Only a Pending payment can be verified.
func (s Status) Verify() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to verify", s.String()),
		)
	}
	return StatusVerified, nil
}

// Reject transitions the status to Rejected.
// Only a Pending payment can be rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}
	return StatusRejected, nil
}

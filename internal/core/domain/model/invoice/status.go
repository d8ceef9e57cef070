package invoice

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice.
//
// State transitions:
//
//	Pending ──┬──> Paid
//	          ├──> Rejected
//	          └──> Overdue ──┬──> Paid
//	                         └──> Rejected
//
// Paid and Rejected are terminal. Overdue is reached by the scheduled
// overdue check when a pending invoice passes its due date; an overdue
// invoice remains payable. Status is persisted as a string.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every issued invoice.
	StatusPending

	// StatusOverdue indicates the invoice passed its due date while pending.
	// It is still payable.
	StatusOverdue

	// StatusPaid indicates a verified payment settled the invoice. Terminal.
	StatusPaid

	// StatusRejected indicates the settlement attempt was rejected by an
	// operator. Terminal.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		StatusPending:  "PENDING",
		StatusOverdue:  "OVERDUE",
		StatusPaid:     "PAID",
		StatusRejected: "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "PENDING",
		StatusOverdue:  "OVERDUE",
		StatusPaid:     "PAID",
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
		fmt.Errorf("%q is not a valid invoice status", s),
	)
}

// Validate checks that the status is one of the defined valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid invoice status", s),
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

// IsPayable reports whether a payment may be submitted against an invoice in
// this status.
func (s Status) IsPayable() bool {
	return s == StatusPending || s == StatusOverdue
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusRejected
}

// Pay transitions the status to Paid.
func (s Status) Pay() (Status, error) {
	if !s.IsPayable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}
	return StatusPaid, nil
}

// Reject transitions the status to Rejected.
func (s Status) Reject() (Status, error) {
	if !s.IsPayable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}
	return StatusRejected, nil
}

// Expire transitions the status to Overdue.
// Only a Pending invoice can expire.
func (s Status) Expire() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}
	return StatusOverdue, nil
}

package shipment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	AtOrigin ──┬──> InTransit ──> Delivered
//	           └──> PaymentRejected
//
// A shipment leaves the origin only when its settlement is verified, so the
// InTransit transition is triggered by the settlement workflow, not by the
// logistics layer. Status is persisted as a string.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAtOrigin is the initial status: the shipment is created, priced
	// and invoiced but still at the origin facility awaiting settlement.
	StatusAtOrigin

	// StatusInTransit indicates the settlement was verified and the shipment
	// is moving toward the recipient.
	StatusInTransit

	// StatusDelivered is the final status of a successful shipment.
	StatusDelivered

	// StatusPaymentRejected indicates the settlement attempt was rejected by
	// an operator while the shipment was still at origin.
	StatusPaymentRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "UNKNOWN",
		StatusAtOrigin:        "AT_ORIGIN",
		StatusInTransit:       "IN_TRANSIT",
		StatusDelivered:       "DELIVERED",
		StatusPaymentRejected: "PAYMENT_REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAtOrigin:        "AT_ORIGIN",
		StatusInTransit:       "IN_TRANSIT",
		StatusDelivered:       "DELIVERED",
		StatusPaymentRejected: "PAYMENT_REJECTED",
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
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks that the status is one of the defined valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid shipment status", s),
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

// Dispatch transitions the status to InTransit.
// Only an AtOrigin shipment can be dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != StatusAtOrigin {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
	return StatusInTransit, nil
}

// Deliver transitions the status to Delivered.
// Only an InTransit shipment can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return StatusDelivered, nil
}

// RejectPayment transitions the status to PaymentRejected.
// Only an AtOrigin shipment still awaits settlement.
func (s Status) RejectPayment() (Status, error) {
	if s != StatusAtOrigin {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject payment", s.String()),
		)
	}
	return StatusPaymentRejected, nil
}

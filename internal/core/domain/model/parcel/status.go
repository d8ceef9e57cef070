package parcel

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so that parcels
// follow the warehouse workflow.
//
// State transitions:
//
//	PreAlerted ──> Received ──┬──> InWarehouse
//	     │            │       └──> PaymentRejected
//	     │            │
//	     └────────────┘
//	  (re-weigh allowed while Received)
//
// Status is persisted as a string so that new states can be added without a
// schema migration.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPreAlerted is the initial status: the client has announced the
	// parcel but it has not yet arrived at the origin warehouse. Weight and
	// price are still zero.
	StatusPreAlerted

	// StatusReceived indicates the parcel has been weighed and priced at the
	// origin warehouse. Re-weighing is allowed in this status.
	StatusReceived

	// StatusInWarehouse indicates the parcel's settlement was accepted
	// through the legacy parcel approval flow and it is held in the
	// destination warehouse.
	StatusInWarehouse

	// StatusPaymentRejected indicates the settlement attempt for the parcel
	// was rejected by an operator.
	StatusPaymentRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "UNKNOWN",
		StatusPreAlerted:      "PRE_ALERTED",
		StatusReceived:        "RECEIVED",
		StatusInWarehouse:     "IN_WAREHOUSE",
		StatusPaymentRejected: "PAYMENT_REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPreAlerted:      "PRE_ALERTED",
		StatusReceived:        "RECEIVED",
		StatusInWarehouse:     "IN_WAREHOUSE",
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
		fmt.Errorf("%q is not a valid parcel status", s),
	)
}

// Validate checks that the status is one of the defined valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid parcel status", s),
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

// Receive transitions the status to Received.
//
// Valid transitions:
//   - PreAlerted -> Received (first weigh-in)
//   - Received -> Received (re-weigh)
func (s Status) Receive() (Status, error) {
	if s != StatusPreAlerted && s != StatusReceived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to receive a weigh-in", s.String()),
		)
	}
	return StatusReceived, nil
}

// Warehouse transitions the status to InWarehouse.
// Only a Received (weighed and priced) parcel can be moved to the warehouse.
func (s Status) Warehouse() (Status, error) {
	if s != StatusReceived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to move to warehouse", s.String()),
		)
	}
	return StatusInWarehouse, nil
}

// RejectPayment transitions the status to PaymentRejected.
// Only a Received parcel carries a settlement that can be rejected.
func (s Status) RejectPayment() (Status, error) {
	if s != StatusReceived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject payment", s.String()),
		)
	}
	return StatusPaymentRejected, nil
}

package payment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Method is the instrument a payment was submitted with. Persisted as a
// string.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCard is a credit or debit card payment.
	MethodCard

	// MethodTransfer is a bank transfer.
	MethodTransfer

	// MethodCash is a cash payment at a branch.
	MethodCash

	// MethodCheck is a check payment.
	MethodCheck
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:  "UNKNOWN",
		MethodCard:     "CARD",
		MethodTransfer: "TRANSFER",
		MethodCash:     "CASH",
		MethodCheck:    "CHECK",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCard:     "CARD",
		MethodTransfer: "TRANSFER",
		MethodCash:     "CASH",
		MethodCheck:    "CHECK",
	}
}

// MethodFromString parses a persisted method value.
func MethodFromString(s string) (Method, error) {
	for method, str := range getValidMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks that the method is one of the defined valid methods.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"method",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the persisted name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

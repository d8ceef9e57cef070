package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand represents an operator confirming a pending payment.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	paymentID int64

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command to verify a payment.
func NewVerifyPaymentCommand(actor kernel.Actor, paymentID int64) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c VerifyPaymentCommand) Actor() kernel.Actor { return c.actor }

// PaymentID returns the payment being verified.
func (c VerifyPaymentCommand) PaymentID() int64 { return c.paymentID }

func (c *VerifyPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *VerifyPaymentCommand) setPaymentID(paymentID int64) error {
	if paymentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentId",
			fmt.Errorf("%d is not a positive identifier", paymentID),
		)
	}
	c.paymentID = paymentID
	return nil
}

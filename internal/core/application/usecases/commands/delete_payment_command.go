package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrDeletePaymentCommandIsNotConstructed = errors.New(
	"DeletePaymentCommand must be created via NewDeletePaymentCommand constructor",
)

// DeletePaymentCommand represents withdrawing a payment that has not been
// settled yet.
type DeletePaymentCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	paymentID int64

	guard guard.ConstructorGuard
}

// NewDeletePaymentCommand creates a command to delete a pending payment.
func NewDeletePaymentCommand(actor kernel.Actor, paymentID int64) (DeletePaymentCommand, error) {
	cmd := DeletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return DeletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrDeletePaymentCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c DeletePaymentCommand) Actor() kernel.Actor { return c.actor }

// PaymentID returns the payment being deleted.
func (c DeletePaymentCommand) PaymentID() int64 { return c.paymentID }

func (c *DeletePaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DeletePaymentCommand) setPaymentID(paymentID int64) error {
	if paymentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentId",
			fmt.Errorf("%d is not a positive identifier", paymentID),
		)
	}
	c.paymentID = paymentID
	return nil
}

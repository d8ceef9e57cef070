package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrApproveParcelPaymentCommandIsNotConstructed = errors.New(
	"ApproveParcelPaymentCommand must be created via NewApproveParcelPaymentCommand constructor",
)

// ApproveParcelPaymentCommand represents an operator approving a parcel
// settlement: the verified payment releases the parcel into the warehouse.
type ApproveParcelPaymentCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	paymentID int64

	guard guard.ConstructorGuard
}

// NewApproveParcelPaymentCommand creates a command to approve a parcel
// payment.
func NewApproveParcelPaymentCommand(actor kernel.Actor, paymentID int64) (ApproveParcelPaymentCommand, error) {
	cmd := ApproveParcelPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return ApproveParcelPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveParcelPaymentCommand) Validate() error {
	return c.guard.Validate(ErrApproveParcelPaymentCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c ApproveParcelPaymentCommand) Actor() kernel.Actor { return c.actor }

// PaymentID returns the payment being approved.
func (c ApproveParcelPaymentCommand) PaymentID() int64 { return c.paymentID }

func (c *ApproveParcelPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ApproveParcelPaymentCommand) setPaymentID(paymentID int64) error {
	if paymentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentId",
			fmt.Errorf("%d is not a positive identifier", paymentID),
		)
	}
	c.paymentID = paymentID
	return nil
}

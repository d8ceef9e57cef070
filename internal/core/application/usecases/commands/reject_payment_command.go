package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrRejectPaymentCommandIsNotConstructed = errors.New(
	"RejectPaymentCommand must be created via NewRejectPaymentCommand constructor",
)

// RejectPaymentCommand represents an operator rejecting a pending payment
// with a mandatory reason.
type RejectPaymentCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	paymentID int64
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectPaymentCommand creates a command to reject a payment.
func NewRejectPaymentCommand(actor kernel.Actor, paymentID int64, reason string) (RejectPaymentCommand, error) {
	cmd := RejectPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentID(paymentID),
		cmd.setReason(reason),
	); err != nil {
		return RejectPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRejectPaymentCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c RejectPaymentCommand) Actor() kernel.Actor { return c.actor }

// PaymentID returns the payment being rejected.
func (c RejectPaymentCommand) PaymentID() int64 { return c.paymentID }

// Reason returns the rejection reason.
func (c RejectPaymentCommand) Reason() string { return c.reason }

func (c *RejectPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RejectPaymentCommand) setPaymentID(paymentID int64) error {
	if paymentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentId",
			fmt.Errorf("%d is not a positive identifier", paymentID),
		)
	}
	c.paymentID = paymentID
	return nil
}

func (c *RejectPaymentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrSubmitPaymentCommandIsNotConstructed = errors.New(
	"SubmitPaymentCommand must be created via NewSubmitPaymentCommand constructor",
)

// SubmitPaymentCommand represents a client paying an invoice. The payment is
// recorded pending; an operator settles it later.
type SubmitPaymentCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	invoiceID int64
	amount    kernel.Money
	method    payment.Method
	reference string
	note      string

	guard guard.ConstructorGuard
}

// NewSubmitPaymentCommand creates a command to submit a payment against an
// invoice. Reference and note are optional.
func NewSubmitPaymentCommand(
	actor kernel.Actor,
	invoiceID int64,
	amount kernel.Money,
	method payment.Method,
	reference string,
	note string,
) (SubmitPaymentCommand, error) {
	cmd := SubmitPaymentCommand{
		reference: reference,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setInvoiceID(invoiceID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
	); err != nil {
		return SubmitPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c SubmitPaymentCommand) Actor() kernel.Actor { return c.actor }

// InvoiceID returns the invoice being paid.
func (c SubmitPaymentCommand) InvoiceID() int64 { return c.invoiceID }

// Amount returns the submitted amount.
func (c SubmitPaymentCommand) Amount() kernel.Money { return c.amount }

// Method returns the payment method.
func (c SubmitPaymentCommand) Method() payment.Method { return c.method }

// Reference returns the external payment reference, possibly empty.
func (c SubmitPaymentCommand) Reference() string { return c.reference }

// Note returns the submitter's note, possibly empty.
func (c SubmitPaymentCommand) Note() string { return c.note }

func (c *SubmitPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SubmitPaymentCommand) setInvoiceID(invoiceID int64) error {
	if invoiceID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a positive identifier", invoiceID),
		)
	}
	c.invoiceID = invoiceID
	return nil
}

func (c *SubmitPaymentCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			errors.New("amount must be greater than 0"),
		)
	}
	c.amount = amount
	return nil
}

func (c *SubmitPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
